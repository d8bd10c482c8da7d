package subscribe_news

import "github.com/sv-web/sve-backend/internal/domain"

// SubscriptionRequest is the HTTP model of a newsletter subscribe or
// unsubscribe. The website sends the topic tags as "types".
type SubscriptionRequest struct {
	Email  string   `json:"email"`
	Topics []string `json:"types"`
}

// ToSubscription converts the HTTP model into the domain subscription.
func (r *SubscriptionRequest) ToSubscription() (domain.Subscription, error) {
	topics := make([]domain.Topic, 0, len(r.Topics))
	for _, raw := range r.Topics {
		topic, err := domain.ParseTopic(raw)
		if err != nil {
			return domain.Subscription{}, err
		}
		topics = append(topics, topic)
	}
	return domain.Subscription{
		Email:  r.Email,
		Topics: topics,
	}, nil
}
