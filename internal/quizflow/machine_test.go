package quizflow

import (
	"testing"

	"emoquiz-service/internal/models"
)

func newSession() *models.QuizSession {
	return &models.QuizSession{
		Phase:   models.PhaseNotStarted,
		Answers: models.AnswerSet{},
	}
}

func TestStartTransitions(t *testing.T) {
	m := NewMachine(4)
	s := newSession()

	if !m.Start(s) {
		t.Fatal("Start from NotStarted should apply")
	}
	if s.Phase != models.PhaseInProgress || s.CurrentQuestion != 0 {
		t.Errorf("after Start: phase=%q question=%d", s.Phase, s.CurrentQuestion)
	}
	if m.Start(s) {
		t.Error("Start while InProgress should be a no-op")
	}
}

func TestNextRequiresAnswer(t *testing.T) {
	m := NewMachine(4)
	s := newSession()
	m.Start(s)

	if m.Next(s) {
		t.Error("Next without an answer should be rejected")
	}
	if s.CurrentQuestion != 0 {
		t.Errorf("currentQuestion = %d, want 0 (unchanged)", s.CurrentQuestion)
	}

	m.Answer(s, 3)
	if !m.Next(s) {
		t.Error("Next with an answer should advance")
	}
	if s.CurrentQuestion != 1 {
		t.Errorf("currentQuestion = %d, want 1", s.CurrentQuestion)
	}
}

func TestAnswerValidation(t *testing.T) {
	m := NewMachine(4)
	s := newSession()

	if m.Answer(s, 3) {
		t.Error("Answer before Start should be rejected")
	}

	m.Start(s)
	for _, v := range []int{0, 6, -1} {
		if m.Answer(s, v) {
			t.Errorf("Answer(%d) outside Likert range should be rejected", v)
		}
	}
	if !m.Answer(s, 1) {
		t.Error("Answer(1) should be accepted")
	}
	if !m.Answer(s, 5) {
		t.Error("re-answering the current question should be accepted")
	}
	if v, _ := s.Answers.Get(0); v != 5 {
		t.Errorf("answer = %d, want latest value 5", v)
	}
}

func TestCompleteOnLastQuestion(t *testing.T) {
	m := NewMachine(3)
	s := newSession()
	m.Start(s)

	for i := 0; i < 3; i++ {
		if !m.Answer(s, 4) {
			t.Fatalf("answer %d rejected", i)
		}
		if !m.Next(s) {
			t.Fatalf("next %d rejected", i)
		}
	}

	if s.Phase != models.PhaseCompleted {
		t.Errorf("phase = %q, want completed", s.Phase)
	}
	if m.Next(s) {
		t.Error("Next after completion should be a no-op")
	}
	if m.Answer(s, 2) {
		t.Error("Answer after completion should be a no-op")
	}
}

func TestPreviousKeepsAnswer(t *testing.T) {
	m := NewMachine(4)
	s := newSession()
	m.Start(s)

	if m.Previous(s) {
		t.Error("Previous at question 0 should be rejected")
	}

	m.Answer(s, 4)
	m.Next(s)
	m.Answer(s, 2)

	if !m.Previous(s) {
		t.Fatal("Previous from question 1 should apply")
	}
	if s.CurrentQuestion != 0 {
		t.Errorf("currentQuestion = %d, want 0", s.CurrentQuestion)
	}
	if v, ok := s.Answers.Get(1); !ok || v != 2 {
		t.Errorf("vacated question answer = %d (present=%v), want 2 kept", v, ok)
	}
}

func TestRestartClearsEverything(t *testing.T) {
	m := NewMachine(2)
	s := newSession()
	m.Start(s)
	m.Answer(s, 5)
	m.Next(s)
	m.Answer(s, 5)
	m.Next(s)

	if s.Phase != models.PhaseCompleted {
		t.Fatalf("setup: phase = %q", s.Phase)
	}

	if !m.Restart(s) {
		t.Fatal("Restart should always apply")
	}
	if s.Phase != models.PhaseNotStarted || s.CurrentQuestion != 0 || len(s.Answers) != 0 {
		t.Errorf("after Restart: phase=%q question=%d answers=%d", s.Phase, s.CurrentQuestion, len(s.Answers))
	}
}
