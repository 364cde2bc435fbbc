package bootstrap

import (
	"log/slog"

	"barberbook/internal/infra/mail"
	"barberbook/internal/infra/payment"
	"barberbook/internal/pkg/config"
	"barberbook/internal/usecase/commands"

	"go.uber.org/fx"
)

// NotifyModule wires the outbound collaborators: SMTP mail and the payment
// processor. Both degrade to no-ops when unconfigured so local development
// never needs external accounts.
var NotifyModule = fx.Module("notify",
	fx.Provide(
		NewMailer,
		NewPaymentIntents,
	),
)

func NewMailer(cfg config.Config) commands.Mailer {
	if !cfg.SMTP.Enabled {
		slog.Info("SMTP is disabled, mail will be dropped")
		return mail.NewNopSender()
	}
	return mail.NewSMTPSender(&cfg)
}

func NewPaymentIntents(cfg config.Config) commands.PaymentIntents {
	if cfg.Stripe.SecretKey == "" {
		slog.Info("Stripe key is not configured, deposits use placeholder intents")
		return payment.NewNopIntents()
	}
	return payment.NewStripeIntents(&cfg)
}
