package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSeat(t *testing.T) {
	plane := Airplane{Rows: 20, SeatsInRow: 6}

	tests := []struct {
		name      string
		row, seat int
		wantField string
		wantMax   int
	}{
		{name: "first seat", row: 1, seat: 1},
		{name: "last seat", row: 20, seat: 6},
		{name: "middle", row: 10, seat: 3},
		{name: "row zero", row: 0, seat: 1, wantField: "row", wantMax: 20},
		{name: "row negative", row: -2, seat: 1, wantField: "row", wantMax: 20},
		{name: "row above bound", row: 21, seat: 1, wantField: "row", wantMax: 20},
		{name: "seat zero", row: 1, seat: 0, wantField: "seat", wantMax: 6},
		{name: "seat above bound", row: 1, seat: 7, wantField: "seat", wantMax: 6},
		{name: "both out, row reported first", row: 31, seat: 7, wantField: "row", wantMax: 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSeat(plane, tt.row, tt.seat)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			var oor *SeatOutOfRangeError
			require.ErrorAs(t, err, &oor)
			assert.Equal(t, tt.wantField, oor.Field)
			assert.Equal(t, tt.wantMax, oor.Max)
			if tt.wantField == "row" {
				assert.Equal(t, tt.row, oor.Value)
			} else {
				assert.Equal(t, tt.seat, oor.Value)
			}
		})
	}
}

func TestPriceFor(t *testing.T) {
	tests := []struct {
		class TicketClass
		want  int64
	}{
		{ClassEconomy, 100},
		{ClassBusiness, 200},
		{ClassFirst, 300},
		{TicketClass("premium"), 100},
		{TicketClass(""), 100},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, PriceFor(tt.class), "class %q", tt.class)
	}
}
