package service

import (
	"context"

	"github.com/webthingsio/mailchimp-proxy/internal/config"
	"github.com/webthingsio/mailchimp-proxy/internal/domain"
	"github.com/webthingsio/mailchimp-proxy/pkg/email"
)

type Services struct {
	Newsletter Newsletter
}

type Deps struct {
	Config        *config.Config
	EmailProvider email.Provider
}

func NewServices(deps Deps) *Services {
	return &Services{
		Newsletter: newNewsletterService(deps.EmailProvider, deps.Config.Mailchimp.ListID),
	}
}

type Newsletter interface {
	Subscribe(ctx context.Context, sub domain.Subscription) (Outcome, error)
}
