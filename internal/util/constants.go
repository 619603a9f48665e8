package util

const DateFormat = "2006-01-02"

const (
	StorageLocal = "local"
	StorageMinio = "minio"
)

// Durable store backends.
const (
	StoreGorm   = "gorm"
	StoreRedis  = "redis"
	StoreMemory = "memory"
)

// Durable store keys, one per collection.
const (
	KeyUsers              = "app_users"
	KeyCategories         = "app_categories"
	KeyProgress           = "app_progress"
	KeySessions           = "app_sessions"
	KeyCompletedExercises = "app_completed_exercises"
	KeyMissions           = "app_missions"
	KeyTheme              = "theme"
)

const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

const MimeImage = "image/"
