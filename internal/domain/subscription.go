package domain

import "fmt"

// Topic is a newsletter topic.
type Topic string

const (
	TopicGeneral Topic = "General"
	TopicEvents  Topic = "Events"
	TopicFitness Topic = "Fitness"
)

// ParseTopic converts a string into a Topic.
func ParseTopic(s string) (Topic, error) {
	switch Topic(s) {
	case TopicGeneral, TopicEvents, TopicFitness:
		return Topic(s), nil
	default:
		return "", fmt.Errorf("invalid topic %q", s)
	}
}

// Subscription is the set of newsletter topics one email address
// subscribed to. Repeat subscribes union the topic sets; a subscription
// is deleted once its last topic is removed.
type Subscription struct {
	Email  string
	Topics []Topic
}

// HasTopic reports whether the subscription contains the given topic.
func (s *Subscription) HasTopic(topic Topic) bool {
	for _, t := range s.Topics {
		if t == topic {
			return true
		}
	}
	return false
}
