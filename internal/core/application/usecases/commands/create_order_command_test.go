package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mediorder/internal/core/application/usecases/commands"
	"mediorder/internal/core/domain/model/kernel"
	"mediorder/internal/core/domain/model/order"
)

func TestNewCreateOrderCommand(t *testing.T) {
	orderID := kernel.NewUUID()
	prescriptionID := kernel.NewUUID()
	patientID := kernel.NewUUID()

	t.Run("valid command", func(t *testing.T) {
		cmd, err := commands.NewCreateOrderCommand(
			orderID, prescriptionID, patientID,
			order.TypeDelivery, "12 MG Road", "560001", "call on arrival",
		)
		require.NoError(t, err)
		require.NoError(t, cmd.Validate())

		assert.Equal(t, orderID, cmd.OrderID())
		assert.Equal(t, prescriptionID, cmd.PrescriptionID())
		assert.Equal(t, patientID, cmd.PatientID())
		assert.Equal(t, order.TypeDelivery, cmd.OrderType())
		assert.Equal(t, "12 MG Road", cmd.DeliveryAddress())
		assert.Equal(t, "560001", cmd.DeliveryPincode())
		assert.Equal(t, "call on arrival", cmd.SpecialInstructions())
	})

	t.Run("special instructions are optional", func(t *testing.T) {
		cmd, err := commands.NewCreateOrderCommand(
			orderID, prescriptionID, patientID,
			order.TypePickup, "12 MG Road", "560001", "",
		)
		require.NoError(t, err)
		assert.Empty(t, cmd.SpecialInstructions())
	})

	t.Run("empty order id", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(
			kernel.UUID{}, prescriptionID, patientID,
			order.TypeDelivery, "12 MG Road", "560001", "",
		)
		require.Error(t, err)
	})

	t.Run("empty prescription id", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(
			orderID, kernel.UUID{}, patientID,
			order.TypeDelivery, "12 MG Road", "560001", "",
		)
		require.Error(t, err)
	})

	t.Run("empty patient id", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(
			orderID, prescriptionID, kernel.UUID{},
			order.TypeDelivery, "12 MG Road", "560001", "",
		)
		require.Error(t, err)
	})

	t.Run("unknown order type", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(
			orderID, prescriptionID, patientID,
			order.TypeUnknown, "12 MG Road", "560001", "",
		)
		require.Error(t, err)
	})

	t.Run("missing delivery address", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(
			orderID, prescriptionID, patientID,
			order.TypeDelivery, "", "560001", "",
		)
		require.ErrorIs(t, err, commands.ErrDeliveryAddressIsRequired)
	})

	t.Run("missing delivery pincode", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(
			orderID, prescriptionID, patientID,
			order.TypeDelivery, "12 MG Road", "", "",
		)
		require.ErrorIs(t, err, commands.ErrDeliveryPincodeIsRequired)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var cmd commands.CreateOrderCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
	})
}
