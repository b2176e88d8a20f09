package phrase

import (
	"errors"
	"math/rand"

	"go.uber.org/zap"
)

// DefaultPhrases is the agent's built-in catch-phrase set. The first entry
// is the signature phrase returned by non-random selection.
var DefaultPhrases = []string{
	"The name’s Bond. James Bond.",
	"Shaken, not stirred.",
	"They say you’re judged by the strength of your enemies.",
	"Problem solver? More of a problem eliminator.",
}

// ErrEmptyPhraseSet is returned when a service is constructed without phrases.
var ErrEmptyPhraseSet = errors.New("phrase set must not be empty")

// Service selects phrases from a fixed set.
type Service struct {
	phrases []string
	logger  *zap.Logger
}

// NewService creates a new phrase service. The phrase set is copied and
// never mutated afterwards. An empty set is a configuration error.
func NewService(phrases []string, logger *zap.Logger) (*Service, error) {
	if len(phrases) == 0 {
		return nil, ErrEmptyPhraseSet
	}
	set := make([]string, len(phrases))
	copy(set, phrases)
	return &Service{
		phrases: set,
		logger:  logger,
	}, nil
}

// Select returns the agent's catch-phrase. With randomize false the
// signature phrase (index 0) is returned; with randomize true a uniformly
// random member of the set is returned.
func (s *Service) Select(randomize bool) string {
	if randomize {
		return s.phrases[rand.Intn(len(s.phrases))]
	}
	return s.phrases[0]
}
