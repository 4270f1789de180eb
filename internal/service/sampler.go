package service

import (
	"fmt"
	"math/rand"

	"github.com/prepmint/examcore/internal/model"
)

// Sampler selects a bounded random subset of a question pool with a minimum
// number of image-bearing questions.
type Sampler interface {
	// Sample returns exactly targetCount questions drawn uniformly without
	// replacement, at least min(minImageCount, targetCount) of them carrying
	// an image when the pool has that many. The result order is shuffled so
	// image questions are not clustered. Selection is intentionally
	// unseeded; two calls over the same pool produce independent tests.
	Sample(pool []model.Question, targetCount, minImageCount int) ([]model.Question, error)
}

type sampler struct{}

func NewSampler() Sampler {
	return &sampler{}
}

func (s *sampler) Sample(pool []model.Question, targetCount, minImageCount int) ([]model.Question, error) {
	if targetCount <= 0 {
		return nil, fmt.Errorf("%w: target count must be positive, got %d", model.ErrValidation, targetCount)
	}
	if len(pool) < targetCount {
		return nil, fmt.Errorf("%w: need %d questions, course pool has %d", model.ErrInsufficientPool, targetCount, len(pool))
	}
	if minImageCount > targetCount {
		minImageCount = targetCount
	}

	var withImage, withoutImage []model.Question
	for _, q := range pool {
		if q.HasImage() {
			withImage = append(withImage, q)
		} else {
			withoutImage = append(withoutImage, q)
		}
	}

	// Shuffle-and-take-prefix is an unbiased draw without replacement.
	shuffle(withImage)
	imageCount := minImageCount
	if imageCount > len(withImage) {
		imageCount = len(withImage)
	}

	selected := make([]model.Question, 0, targetCount)
	selected = append(selected, withImage[:imageCount]...)

	remainder := make([]model.Question, 0, len(pool)-imageCount)
	remainder = append(remainder, withImage[imageCount:]...)
	remainder = append(remainder, withoutImage...)
	shuffle(remainder)
	selected = append(selected, remainder[:targetCount-imageCount]...)

	shuffle(selected)
	return selected, nil
}

// shuffle is a Fisher-Yates shuffle. rand.Shuffle is unbiased, unlike
// sorting by a random comparator.
func shuffle(questions []model.Question) {
	rand.Shuffle(len(questions), func(i, j int) {
		questions[i], questions[j] = questions[j], questions[i]
	})
}
