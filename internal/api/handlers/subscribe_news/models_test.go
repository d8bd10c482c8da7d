package subscribe_news

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sv-web/sve-backend/internal/domain"
)

func TestSubscriptionRequestWireFormat(t *testing.T) {
	var req SubscriptionRequest
	err := json.Unmarshal([]byte(`{"email":"max@example.com","types":["Events","Fitness"]}`), &req)
	require.NoError(t, err)

	subscription, err := req.ToSubscription()
	require.NoError(t, err)

	assert.Equal(t, "max@example.com", subscription.Email)
	assert.Equal(t, []domain.Topic{domain.TopicEvents, domain.TopicFitness}, subscription.Topics)
}

func TestToSubscriptionRejectsUnknownTopic(t *testing.T) {
	req := SubscriptionRequest{Email: "max@example.com", Topics: []string{"Schach"}}

	_, err := req.ToSubscription()
	assert.Error(t, err)
}
