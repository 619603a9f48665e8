package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"english_quest_backend/internal/config"
	"english_quest_backend/internal/model"
	"english_quest_backend/internal/util"
)

type fakeGenerator struct {
	text    string
	textErr error
	image   []byte
	prompts []string
}

func (f *fakeGenerator) GenerateText(_ context.Context, prompt string, _ bool) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.text, f.textErr
}

func (f *fakeGenerator) GenerateImage(_ context.Context, prompt string) ([]byte, error) {
	f.prompts = append(f.prompts, prompt)
	if f.image == nil {
		return nil, errors.New("quota exceeded")
	}
	return f.image, nil
}

func newTestGenerator(backend ContentGenerator, content *ContentService) *GeneratorService {
	s := NewGeneratorService(context.Background(), config.AIConfig{}, nil, content)
	s.SetBackend(config.AIConfig{TimeoutSeconds: 5}, backend)
	return s
}

func TestGenerateTheoryFallbacks(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name    string
		backend *fakeGenerator
		want    string
	}{
		{"ok", &fakeGenerator{text: "# Present Simple"}, "# Present Simple"},
		{"failure", &fakeGenerator{textErr: errors.New("boom")}, TheoryErrorText},
		{"empty", &fakeGenerator{text: "  "}, TheoryEmptyText},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestGenerator(tt.backend, nil)
			got, err := s.GenerateTheory(ctx, "Present Simple")
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("got=%q want=%q", got, tt.want)
			}
			if !strings.Contains(tt.backend.prompts[0], "Present Simple") {
				t.Errorf("prompt misses topic: %q", tt.backend.prompts[0])
			}
		})
	}

	s := NewGeneratorService(ctx, config.AIConfig{}, nil, nil)
	if got, _ := s.GenerateTheory(ctx, "x"); got != TheoryErrorText {
		t.Errorf("unconfigured backend: got=%q", got)
	}
}

func TestGenerateQuestions(t *testing.T) {
	ctx := context.Background()
	raw := "```json\n{\"questions\":[" +
		"{\"id\":\"1\",\"text\":\"She ___ tea.\",\"options\":[\"drink\",\"drinks\"],\"correctAnswer\":\"drinks\"}," +
		"{\"id\":\"1\",\"text\":\"They ___ here.\",\"options\":[\"live\",\"lives\"],\"correctAnswer\":\"live\"}," +
		"{\"id\":\"3\",\"text\":\"\",\"correctAnswer\":\"x\"}" +
		"]}\n```"

	s := newTestGenerator(&fakeGenerator{text: raw}, nil)
	qs, err := s.GenerateQuestions(ctx, "Present Simple", 5, ParseDifficulty("HARD"))
	if err != nil {
		t.Fatal(err)
	}
	if len(qs) != 2 || qs[0].ID == qs[1].ID {
		t.Fatalf("questions: %+v", qs)
	}

	qs, _ = s.GenerateQuestions(ctx, "Present Simple", 1, DifficultyEasy)
	if len(qs) != 1 {
		t.Fatalf("count cap: %d", len(qs))
	}

	s = newTestGenerator(&fakeGenerator{text: "not json"}, nil)
	qs, err = s.GenerateQuestions(ctx, "Present Simple", 5, DifficultyMedium)
	if err != nil || qs == nil || len(qs) != 0 {
		t.Fatalf("malformed output should give an empty list: %v %v", qs, err)
	}
}

func TestParseGeneratedQuestionsArray(t *testing.T) {
	qs, err := parseGeneratedQuestions(`[{"text":"I ___ go.","correctAnswer":"will"}]`)
	if err != nil || len(qs) != 1 || qs[0].ID == "" {
		t.Fatalf("got %+v err=%v", qs, err)
	}
	if _, err := parseGeneratedQuestions("```\n```"); err == nil {
		t.Fatal("empty fence should fail")
	}
}

func TestParseDifficulty(t *testing.T) {
	for in, want := range map[string]Difficulty{"easy": DifficultyEasy, " Hard ": DifficultyHard, "": DifficultyMedium, "insane": DifficultyMedium} {
		if got := ParseDifficulty(in); got != want {
			t.Errorf("ParseDifficulty(%q)=%s want %s", in, got, want)
		}
	}
}

func TestGenerationRefusedWhileBusy(t *testing.T) {
	s := newTestGenerator(&fakeGenerator{text: "ok"}, nil)
	if !s.inflight.TryAcquire(1) {
		t.Fatal("semaphore should start free")
	}
	if _, err := s.GenerateTheory(context.Background(), "x"); !errors.Is(err, util.ErrGenerationInProgress) {
		t.Fatalf("got %v", err)
	}
	s.inflight.Release(1)
	if _, err := s.GenerateTheory(context.Background(), "x"); err != nil {
		t.Fatalf("after release: %v", err)
	}
}

func TestGenerateComic(t *testing.T) {
	ctx := context.Background()
	topic := &model.Topic{ID: "tense-structure", Title: "Estructura de los Tiempos"}
	png := append([]byte("\x89PNG\r\n\x1a\n"), make([]byte, 32)...)

	backend := &fakeGenerator{image: png}
	s := newTestGenerator(backend, nil)
	res, err := s.GenerateComic(ctx, topic)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(res.DataURL, "data:image/png;base64,") || res.URL != "" {
		t.Fatalf("comic: %+v", res)
	}

	s = newTestGenerator(&fakeGenerator{image: []byte("<html>nope</html>")}, nil)
	if _, err := s.GenerateComic(ctx, topic); !errors.Is(err, util.ErrImageGeneration) {
		t.Fatalf("non-image payload: %v", err)
	}
	s = newTestGenerator(&fakeGenerator{}, nil)
	if _, err := s.GenerateComic(ctx, topic); !errors.Is(err, util.ErrImageGeneration) {
		t.Fatalf("backend failure: %v", err)
	}
}

func TestDraftQuestionsSaves(t *testing.T) {
	e := newTestEnv(t)
	catID, topic := e.addTopic(t, 2)
	raw := `[{"id":"d0","text":"new","options":["a","b"],"correctAnswer":"a"}]`
	s := newTestGenerator(&fakeGenerator{text: raw}, e.content)

	if _, err := s.DraftQuestions(e.ctx, catID, topic.ID, 3, DifficultyMedium, true); !errors.Is(err, util.ErrDuplicateQuestion) {
		t.Fatalf("colliding id: %v", err)
	}

	s = newTestGenerator(&fakeGenerator{text: `[{"text":"new","correctAnswer":"a"}]`}, e.content)
	saved, err := s.DraftQuestions(e.ctx, catID, topic.ID, 3, DifficultyMedium, true)
	if err != nil || len(saved) != 1 {
		t.Fatalf("saved=%v err=%v", saved, err)
	}
	stored, _ := e.content.Topic(topic.ID)
	if len(stored.ManualQuestions) != 3 || stored.ManualQuestions[2].Text != "new" {
		t.Fatalf("bank: %+v", stored.ManualQuestions)
	}

	s = newTestGenerator(&fakeGenerator{textErr: errors.New("down")}, e.content)
	theory, err := s.DraftTheory(e.ctx, catID, topic.ID, true)
	if err != nil || theory != TheoryErrorText {
		t.Fatalf("theory=%q err=%v", theory, err)
	}
	stored, _ = e.content.Topic(topic.ID)
	if stored.ManualTheory != "" {
		t.Fatal("fallback text must not be saved")
	}
}
