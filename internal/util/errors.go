package util

import "errors"

var (
	ErrUserNotFound      = errors.New("Usuario no encontrado.")
	ErrUsernameTaken     = errors.New("username already exists")
	ErrInvalidName       = errors.New("name is required")
	ErrInvalidRole       = errors.New("invalid role")
	ErrPermissionDenied  = errors.New("permission denied")
	ErrCategoryNotFound  = errors.New("category not found")
	ErrTopicNotFound     = errors.New("topic not found")
	ErrQuestionNotFound  = errors.New("question not found")
	ErrDuplicateTopic    = errors.New("topic id already exists in category")
	ErrDuplicateQuestion = errors.New("question id already exists in topic")
	ErrInvalidQuestion   = errors.New("question text and correct answer are required")
	ErrInvalidTitle      = errors.New("title is required")
	ErrInvalidTheme      = errors.New("theme must be light or dark")

	ErrNoQuestions      = errors.New("No hay ejercicios disponibles para este tema.")
	ErrNoExam           = errors.New("No hay examen disponible para este tema.")
	ErrBlockNotFound    = errors.New("exercise block out of range")
	ErrNoActiveActivity = errors.New("no practice or exam in progress")
	ErrAnswerRequired   = errors.New("answer the current question first")
	ErrAlreadyAnswered  = errors.New("question already answered")
	ErrInvalidOption    = errors.New("answer is not one of the options")

	ErrGenerationInProgress = errors.New("a generation request is already running")
	ErrImageGeneration      = errors.New("Error generating image. Check API Key.")
)
