package models

import "strconv"

// AnswerSet maps a global question index to a Likert response in [1,5].
// Keys are decimal strings so the set round-trips through BSON, which only
// allows string map keys. Unanswered questions are simply absent.
type AnswerSet map[string]int

// LikertMin and LikertMax bound a valid response (1=Nunca .. 5=Siempre).
const (
	LikertMin = 1
	LikertMax = 5
)

func (a AnswerSet) Get(globalIndex int) (int, bool) {
	v, ok := a[strconv.Itoa(globalIndex)]
	return v, ok
}

func (a AnswerSet) Set(globalIndex, value int) {
	a[strconv.Itoa(globalIndex)] = value
}

func (a AnswerSet) Has(globalIndex int) bool {
	_, ok := a[strconv.Itoa(globalIndex)]
	return ok
}

func ValidLikert(value int) bool {
	return value >= LikertMin && value <= LikertMax
}
