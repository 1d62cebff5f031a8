package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validLineInputs() []commands.LineInput {
	return []commands.LineInput{
		{SKU: "SKU-A", Name: "Implant A", Quantity: 5},
		{SKU: "SKU-B", Name: "Abutment B", Quantity: 3},
	}
}

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	orderID, managerID, clinicID := kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()

	cmd, err := commands.NewCreateOrderCommand(
		orderID, managerID, clinicID, validLineInputs(), true, order.TaxiDelivery,
	)

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.True(t, cmd.OrderID().IsEqual(orderID))
	assert.True(t, cmd.ManagerID().IsEqual(managerID))
	assert.True(t, cmd.ClinicID().IsEqual(clinicID))
	assert.Len(t, cmd.Lines(), 2)
	assert.True(t, cmd.IsUrgent())
	assert.Equal(t, order.TaxiDelivery, cmd.DeliveryType())
}

func TestNewCreateOrderCommand_InvalidInput(t *testing.T) {
	orderID, managerID, clinicID := kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()

	t.Run("no lines", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(
			orderID, managerID, clinicID, nil, false, order.CourierDelivery,
		)
		require.ErrorIs(t, err, commands.ErrOrderLinesAreRequired)
	})

	t.Run("empty sku", func(t *testing.T) {
		lines := []commands.LineInput{{SKU: "", Name: "Implant A", Quantity: 1}}
		_, err := commands.NewCreateOrderCommand(
			orderID, managerID, clinicID, lines, false, order.CourierDelivery,
		)
		require.ErrorIs(t, err, commands.ErrLineSKUIsRequired)
	})

	t.Run("non-positive quantity", func(t *testing.T) {
		lines := []commands.LineInput{{SKU: "SKU-A", Name: "Implant A", Quantity: 0}}
		_, err := commands.NewCreateOrderCommand(
			orderID, managerID, clinicID, lines, false, order.CourierDelivery,
		)
		require.ErrorIs(t, err, commands.ErrLineQuantityIsInvalid)
	})

	t.Run("undefined delivery type", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(
			orderID, managerID, clinicID, validLineInputs(), false, order.DeliveryTypeUnknown,
		)
		require.Error(t, err)
	})

	t.Run("invalid order id", func(t *testing.T) {
		var empty kernel.UUID
		_, err := commands.NewCreateOrderCommand(
			empty, managerID, clinicID, validLineInputs(), false, order.CourierDelivery,
		)
		require.Error(t, err)
	})
}

func TestCreateOrderCommand_Validate_ZeroValue(t *testing.T) {
	cmd := commands.CreateOrderCommand{}
	require.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
}
