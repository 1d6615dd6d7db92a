package intent

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestEmit_LogsKindAndTier(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	sink := NewSink(zap.New(core), nil)

	sink.Emit(context.Background(), UpgradeTier("analyst"))

	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, "intent", entries[0].Message)

	fields := entries[0].ContextMap()
	require.Equal(t, "upgrade_tier", fields["kind"])
	require.Equal(t, "analyst", fields["tier_id"])
}

func TestEmit_OmitsEmptyTier(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	sink := NewSink(zap.New(core), nil)

	sink.Emit(context.Background(), ContactSales())

	fields := logs.All()[0].ContextMap()
	require.Equal(t, "contact_sales", fields["kind"])
	require.NotContains(t, fields, "tier_id")
}

func TestNewSink_NilLogger(t *testing.T) {
	sink := NewSink(nil, nil)
	require.NotPanics(t, func() {
		sink.Emit(context.Background(), StartInvestigation())
	})
}

func TestConstructors(t *testing.T) {
	require.Equal(t, Intent{Kind: KindStartInvestigation}, StartInvestigation())
	require.Equal(t, Intent{Kind: KindUpgradeTier, TierID: "team"}, UpgradeTier("team"))
	require.Equal(t, Intent{Kind: KindContactSales}, ContactSales())
}
