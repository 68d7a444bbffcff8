package quizflow

import "emoquiz-service/internal/models"

// Machine applies quiz session transitions over a fixed question count.
// Guard violations are silent no-ops rather than errors: the caller can
// always fire a transition and check the returned flag, which keeps the
// HTTP layer free of special cases.
type Machine struct {
	totalQuestions int
}

func NewMachine(totalQuestions int) *Machine {
	return &Machine{totalQuestions: totalQuestions}
}

// Start moves a fresh session into InProgress at question 0.
func (m *Machine) Start(s *models.QuizSession) bool {
	if s.Phase != models.PhaseNotStarted {
		return false
	}
	s.Phase = models.PhaseInProgress
	s.CurrentQuestion = 0
	if s.Answers == nil {
		s.Answers = models.AnswerSet{}
	}
	return true
}

// Answer records a Likert value for the current question. It never
// advances the session.
func (m *Machine) Answer(s *models.QuizSession, value int) bool {
	if s.Phase != models.PhaseInProgress || !models.ValidLikert(value) {
		return false
	}
	if s.Answers == nil {
		s.Answers = models.AnswerSet{}
	}
	s.Answers.Set(s.CurrentQuestion, value)
	return true
}

// Next advances to the following question, or completes the session when
// the current question is the last one. Advancing without an answer for
// the current question is rejected.
func (m *Machine) Next(s *models.QuizSession) bool {
	if s.Phase != models.PhaseInProgress {
		return false
	}
	if !s.Answers.Has(s.CurrentQuestion) {
		return false
	}
	if s.CurrentQuestion >= m.totalQuestions-1 {
		s.Phase = models.PhaseCompleted
		return true
	}
	s.CurrentQuestion++
	return true
}

// Previous steps back one question. The answer recorded for the vacated
// question is kept.
func (m *Machine) Previous(s *models.QuizSession) bool {
	if s.Phase != models.PhaseInProgress || s.CurrentQuestion == 0 {
		return false
	}
	s.CurrentQuestion--
	return true
}

// Restart wipes all answers and returns the session to NotStarted. Valid
// from any phase.
func (m *Machine) Restart(s *models.QuizSession) bool {
	s.Phase = models.PhaseNotStarted
	s.CurrentQuestion = 0
	s.Answers = models.AnswerSet{}
	return true
}
