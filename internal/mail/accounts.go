package mail

import (
	"fmt"

	"github.com/sv-web/sve-backend/internal/config"
	"github.com/sv-web/sve-backend/internal/domain"
)

// Account is one SMTP account the service sends from. An account is
// responsible for one or more message topics.
type Account struct {
	Topics   []domain.Topic
	Address  string
	Host     string
	Port     int
	User     string
	Password string
}

// HandlesTopic reports whether the account is responsible for the topic.
func (a *Account) HandlesTopic(topic domain.Topic) bool {
	for _, t := range a.Topics {
		if t == topic {
			return true
		}
	}
	return false
}

// Registry holds all configured mail accounts.
type Registry struct {
	accounts []Account
}

// NewRegistry builds the account registry from the configuration.
func NewRegistry(configs []config.MailAccountConfig) (*Registry, error) {
	accounts := make([]Account, 0, len(configs))
	for i, cfg := range configs {
		topics := make([]domain.Topic, 0, len(cfg.Types))
		for _, value := range cfg.Types {
			topic, err := domain.ParseTopic(value)
			if err != nil {
				return nil, fmt.Errorf("%w: accounts[%d]: %v", ErrInvalidAccount, i, err)
			}
			topics = append(topics, topic)
		}
		accounts = append(accounts, Account{
			Topics:   topics,
			Address:  cfg.Address,
			Host:     cfg.Host,
			Port:     cfg.Port,
			User:     cfg.User,
			Password: cfg.Password,
		})
	}
	return &Registry{accounts: accounts}, nil
}

// ByTopic returns the first account responsible for the topic.
func (r *Registry) ByTopic(topic domain.Topic) (*Account, error) {
	for i := range r.accounts {
		if r.accounts[i].HandlesTopic(topic) {
			return &r.accounts[i], nil
		}
	}
	return nil, fmt.Errorf("%w: topic %s", ErrNoAccount, topic)
}

// ByAddress returns the account sending from the given address. Events
// with an alternative email address use this lookup.
func (r *Registry) ByAddress(address string) (*Account, error) {
	for i := range r.accounts {
		if r.accounts[i].Address == address {
			return &r.accounts[i], nil
		}
	}
	return nil, fmt.Errorf("%w: address %s", ErrNoAccount, address)
}
