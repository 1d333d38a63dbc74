//go:build unit

package commands_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"shop-winback/internal/domain/campaign"
	"shop-winback/internal/domain/customer"
	"shop-winback/internal/usecase/commands"
	"shop-winback/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type profileView struct {
	Email string
	Name  string
	Phone string
	Date  string
}

func viewProfiles(profiles []*customer.Profile) []profileView {
	out := make([]profileView, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, profileView{Email: p.Email(), Name: p.Name(), Phone: p.Phone(), Date: p.LastOrderDate()})
	}
	return out
}

func newExtractor() *commands.CustomerExtractor {
	return commands.NewCustomerExtractor(customer.NewPhoneNormalizer("55"), slog.New(slog.DiscardHandler))
}

func TestCustomerExtractor_Extract(t *testing.T) {
	window := campaign.Window{Days: 30, Date: time.Date(2026, 9, 16, 0, 0, 0, 0, time.UTC)}

	tests := []struct {
		name   string
		orders []json.RawMessage
		want   []profileView
	}{
		{
			name: "first order per email wins",
			orders: []json.RawMessage{
				builder.NewOrderBuilder().WithEmail("a@x.com").WithName("Ana Souza").WithPhone("51 99999-0001").BuildRaw(),
				builder.NewOrderBuilder().WithEmail("b@x.com").WithName("Bruno Lima").WithPhone("51 99999-0002").BuildRaw(),
				builder.NewOrderBuilder().WithEmail("a@x.com").WithName("Ana Other").WithPhone("51 99999-0003").BuildRaw(),
			},
			want: []profileView{
				{Email: "a@x.com", Name: "Ana Souza", Phone: "5551999990001", Date: "2026-09-16"},
				{Email: "b@x.com", Name: "Bruno Lima", Phone: "5551999990002", Date: "2026-09-16"},
			},
		},
		{
			name: "orders without email collapse into one customer",
			orders: []json.RawMessage{
				builder.NewOrderBuilder().WithoutEmail().WithName("Carla").BuildRaw(),
				builder.NewOrderBuilder().WithEmail("").WithName("Diego").BuildRaw(),
				builder.NewOrderBuilder().WithField("email", nil).WithName("Eva").BuildRaw(),
			},
			want: []profileView{
				{Email: customer.UnavailableEmail, Name: "Carla", Phone: "5551998765432", Date: "2026-09-16"},
			},
		},
		{
			name: "malformed records are skipped",
			orders: []json.RawMessage{
				builder.MalformedOrder(),
				builder.NewOrderBuilder().BuildRaw(),
				json.RawMessage(`[1,2,3]`),
			},
			want: []profileView{
				{Email: "joao.silva@example.com", Name: "João Silva", Phone: "5551998765432", Date: "2026-09-16"},
			},
		},
		{
			name: "missing shipping address yields placeholders",
			orders: []json.RawMessage{
				builder.NewOrderBuilder().WithoutShipping().BuildRaw(),
			},
			want: []profileView{
				{Email: "joao.silva@example.com", Name: customer.UnavailableName, Phone: "", Date: "2026-09-16"},
			},
		},
		{
			name:   "no orders",
			orders: nil,
			want:   []profileView{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := newExtractor().Extract(context.Background(), window, tt.orders)
			if diff := cmp.Diff(tt.want, viewProfiles(got)); diff != "" {
				t.Errorf("Extract() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCustomerExtractor_Extract_PreservesFirstAppearanceOrder(t *testing.T) {
	window := campaign.Window{Days: 60}
	emails := []string{"z@x.com", "m@x.com", "a@x.com", "m@x.com", "z@x.com", "q@x.com"}

	orders := make([]json.RawMessage, 0, len(emails))
	for _, e := range emails {
		orders = append(orders, builder.NewOrderBuilder().WithEmail(e).BuildRaw())
	}

	got := newExtractor().Extract(context.Background(), window, orders)

	require.Len(t, got, 4)
	gotEmails := make([]string, 0, len(got))
	for _, p := range got {
		gotEmails = append(gotEmails, p.Email())
	}
	assert.Equal(t, []string{"z@x.com", "m@x.com", "a@x.com", "q@x.com"}, gotEmails)
}
