package hub

import (
	"math"

	"quiz-service/domain"
)

// Score, bir cevabın kazandırdığı puanı hesaplar. Saf fonksiyondur.
//
// Yanlış cevap 0 puan alır. Doğru cevap taban puanın yarısını garanti eder;
// kalan yarısı hız bonusudur: anında cevap tam puan, süre sonunda cevap
// yarım puan getirir. Süre aşılmış bir cevap (normalde reddedilir) tabana
// kenetlenir, asla negatif olmaz. Sonuç en yakın tam sayıya yuvarlanır
// (yarımlar yukarı).
func Score(isCorrect bool, elapsedMs, budgetMs int64, basePoints int) int {
	if !isCorrect {
		return 0
	}
	if budgetMs <= 0 {
		return basePoints
	}

	speedFactor := float64(budgetMs-elapsedMs) / float64(budgetMs)
	if speedFactor < 0 {
		speedFactor = 0
	}
	if speedFactor > 1 {
		speedFactor = 1
	}

	raw := float64(basePoints) * (0.5 + 0.5*speedFactor)
	return int(math.Floor(raw + 0.5))
}

// isCorrectAnswer, soru tipine göre doğruluğu belirler. Tek cevaplı
// tiplerde indeks karşılaştırması, multi_select'te tam küme eşitliği
// aranır; kısmi doğruya puan verilmez.
func isCorrectAnswer(q *domain.Question, answerIndex int, answerIndices []int) bool {
	if q.QuestionType == domain.QuestionTypeMultiSelect {
		if len(answerIndices) == 0 {
			answerIndices = []int{answerIndex}
		}
		return sameIndexSet(q.CorrectAnswerIndices, answerIndices)
	}
	return answerIndex == q.CorrectAnswerIndex
}

func sameIndexSet(a, b []int) bool {
	if len(a) == 0 {
		return false
	}
	set := make(map[int]struct{}, len(a))
	for _, i := range a {
		set[i] = struct{}{}
	}
	if len(set) != len(b) {
		return false
	}
	seen := make(map[int]struct{}, len(b))
	for _, i := range b {
		if _, ok := set[i]; !ok {
			return false
		}
		if _, dup := seen[i]; dup {
			return false
		}
		seen[i] = struct{}{}
	}
	return true
}
