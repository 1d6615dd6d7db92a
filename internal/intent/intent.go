// Package intent defines the outbound boundary of the landing experience.
// CTAs never perform a transaction; they emit an Intent that a checkout or
// sign-up collaborator picks up out of process.
package intent

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"fraudlens/internal/telemetry"
)

// Kind names the action the user asked for.
type Kind string

const (
	KindStartInvestigation Kind = "start_investigation"
	KindUpgradeTier        Kind = "upgrade_tier"
	KindContactSales       Kind = "contact_sales"
)

// Intent is one emitted user action. TierID is set only for KindUpgradeTier.
type Intent struct {
	Kind   Kind
	TierID string
}

// StartInvestigation is the primary CTA on both landing variants.
func StartInvestigation() Intent { return Intent{Kind: KindStartInvestigation} }

// UpgradeTier is emitted when the user confirms a pricing tier.
func UpgradeTier(tierID string) Intent { return Intent{Kind: KindUpgradeTier, TierID: tierID} }

// ContactSales is the secondary CTA.
func ContactSales() Intent { return Intent{Kind: KindContactSales} }

// Sink records emitted intents: a structured log line always, an OTLP span
// when telemetry is configured.
type Sink struct {
	log      *zap.Logger
	exporter *telemetry.Exporter
}

// NewSink builds a sink. A nil logger is replaced with a no-op logger; a
// nil exporter disables spans.
func NewSink(log *zap.Logger, exporter *telemetry.Exporter) *Sink {
	if log == nil {
		log = zap.NewNop()
	}
	return &Sink{log: log, exporter: exporter}
}

// Emit hands one intent to the downstream collaborators. Fire and forget:
// the UI does not wait on, or react to, anything here.
func (s *Sink) Emit(ctx context.Context, in Intent) {
	fields := []zap.Field{zap.String("kind", string(in.Kind))}
	attrs := []attribute.KeyValue{attribute.String("intent.kind", string(in.Kind))}
	if in.TierID != "" {
		fields = append(fields, zap.String("tier_id", in.TierID))
		attrs = append(attrs, attribute.String("tier.id", in.TierID))
	}
	s.log.Info("intent", fields...)
	s.exporter.EmitIntent(ctx, string(in.Kind), attrs...)
}
