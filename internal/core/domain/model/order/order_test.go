package order_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mediorder/internal/core/domain/model/kernel"
	"mediorder/internal/core/domain/model/order"
)

var testNow = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

func newTestItems(t *testing.T, count int) []order.Item {
	t.Helper()
	items := make([]order.Item, 0, count)
	for i := 0; i < count; i++ {
		item, err := order.NewItem("Paracetamol", "500mg", 10)
		require.NoError(t, err)
		items = append(items, item)
	}
	return items
}

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(),
		kernel.GenerateOrderNumber(testNow),
		kernel.NewUUID(),
		kernel.NewUUID(),
		order.TypeDelivery,
		"221B Baker Street",
		"560001",
		"+91-9876543210",
		"ring the bell twice",
		newTestItems(t, 2),
		testNow,
	)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("creates pending order with computed pricing", func(t *testing.T) {
		o := newTestOrder(t)

		require.NoError(t, o.Validate())
		assert.Equal(t, order.Pending, o.Status())
		assert.Nil(t, o.Pharmacy())
		assert.Len(t, o.Items(), 2)
		assert.InDelta(t, 2*order.ItemBaseRate, o.TotalAmount(), 1e-9)
		assert.InDelta(t, order.BaseDeliveryFee, o.DeliveryFee(), 1e-9)
		assert.InDelta(t, o.TotalAmount()+o.DeliveryFee(), o.FinalAmount(), 1e-9)
		assert.Equal(t, int64(1), o.Version())
		assert.Equal(t, testNow, o.CreatedAt())
		assert.Nil(t, o.AcceptedAt())
		assert.Nil(t, o.ExpectedDeliveryTime())
	})

	t.Run("item count follows prescription line count", func(t *testing.T) {
		o, err := order.NewOrder(
			kernel.NewUUID(), kernel.GenerateOrderNumber(testNow),
			kernel.NewUUID(), kernel.NewUUID(), order.TypeDelivery,
			"addr", "560001", "", "", newTestItems(t, 5), testNow,
		)
		require.NoError(t, err)
		assert.Len(t, o.Items(), 5)
		assert.InDelta(t, 5*order.ItemBaseRate, o.TotalAmount(), 1e-9)
	})

	t.Run("requires at least one item", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), kernel.GenerateOrderNumber(testNow),
			kernel.NewUUID(), kernel.NewUUID(), order.TypeDelivery,
			"addr", "560001", "", "", nil, testNow,
		)
		require.Error(t, err)
	})

	t.Run("requires delivery address and pincode", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), kernel.GenerateOrderNumber(testNow),
			kernel.NewUUID(), kernel.NewUUID(), order.TypeDelivery,
			"", "", "", "", newTestItems(t, 1), testNow,
		)
		require.Error(t, err)
	})

	t.Run("requires valid identifiers", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.UUID{}, kernel.GenerateOrderNumber(testNow),
			kernel.NewUUID(), kernel.NewUUID(), order.TypeDelivery,
			"addr", "560001", "", "", newTestItems(t, 1), testNow,
		)
		require.Error(t, err)
	})
}

func TestOrder_AssignPharmacy(t *testing.T) {
	t.Run("assigns from pending", func(t *testing.T) {
		o := newTestOrder(t)
		pharmacyID := kernel.NewUUID()

		require.NoError(t, o.AssignPharmacy(pharmacyID, testNow))

		assert.Equal(t, order.PharmacyAssigned, o.Status())
		require.NotNil(t, o.Pharmacy())
		assert.True(t, o.Pharmacy().IsEqual(pharmacyID))
	})

	t.Run("reassignment while assigned is allowed", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.AssignPharmacy(kernel.NewUUID(), testNow))

		other := kernel.NewUUID()
		require.NoError(t, o.AssignPharmacy(other, testNow))
		assert.True(t, o.Pharmacy().IsEqual(other))
	})

	t.Run("cannot assign a delivered order", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.AssignPharmacy(kernel.NewUUID(), testNow))
		require.NoError(t, o.ForceTransitionTo(order.Delivered, testNow))

		require.Error(t, o.AssignPharmacy(kernel.NewUUID(), testNow))
	})

	t.Run("rejects invalid pharmacy id", func(t *testing.T) {
		o := newTestOrder(t)
		require.Error(t, o.AssignPharmacy(kernel.UUID{}, testNow))
	})
}

func TestOrder_Accept(t *testing.T) {
	t.Run("accept stamps timestamps and notes", func(t *testing.T) {
		o := newTestOrder(t)
		pharmacyID := kernel.NewUUID()
		require.NoError(t, o.AssignPharmacy(pharmacyID, testNow))

		acceptTime := testNow.Add(5 * time.Minute)
		require.NoError(t, o.Accept(pharmacyID, "stock confirmed", acceptTime))

		assert.Equal(t, order.Accepted, o.Status())
		require.NotNil(t, o.AcceptedAt())
		assert.Equal(t, acceptTime, *o.AcceptedAt())
		require.NotNil(t, o.ExpectedDeliveryTime())
		assert.Equal(t, acceptTime.Add(2*time.Hour), *o.ExpectedDeliveryTime())
		assert.Equal(t, "stock confirmed", o.PharmacyNotes())
	})

	t.Run("foreign pharmacy is not authorized", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.AssignPharmacy(kernel.NewUUID(), testNow))

		err := o.Accept(kernel.NewUUID(), "", testNow)
		require.ErrorIs(t, err, order.ErrPharmacyNotAuthorized)
		assert.Equal(t, order.PharmacyAssigned, o.Status())
	})

	t.Run("cannot accept an unassigned order", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.Accept(kernel.NewUUID(), "", testNow)
		require.ErrorIs(t, err, order.ErrPharmacyNotAuthorized)
	})
}

func TestOrder_Reject(t *testing.T) {
	t.Run("reject records reason and clears pharmacy", func(t *testing.T) {
		o := newTestOrder(t)
		pharmacyID := kernel.NewUUID()
		require.NoError(t, o.AssignPharmacy(pharmacyID, testNow))

		require.NoError(t, o.Reject(pharmacyID, "out of stock", testNow))

		assert.Equal(t, order.Rejected, o.Status())
		assert.Equal(t, "out of stock", o.RejectionReason())
		assert.Nil(t, o.Pharmacy())
	})

	t.Run("rejected order can be reassigned", func(t *testing.T) {
		o := newTestOrder(t)
		pharmacyID := kernel.NewUUID()
		require.NoError(t, o.AssignPharmacy(pharmacyID, testNow))
		require.NoError(t, o.Reject(pharmacyID, "out of stock", testNow))

		next := kernel.NewUUID()
		require.NoError(t, o.AssignPharmacy(next, testNow))
		assert.Equal(t, order.PharmacyAssigned, o.Status())
		assert.True(t, o.Pharmacy().IsEqual(next))
		assert.Equal(t, "out of stock", o.RejectionReason())
	})

	t.Run("reason is required", func(t *testing.T) {
		o := newTestOrder(t)
		pharmacyID := kernel.NewUUID()
		require.NoError(t, o.AssignPharmacy(pharmacyID, testNow))

		require.Error(t, o.Reject(pharmacyID, "", testNow))
	})

	t.Run("foreign pharmacy is not authorized", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.AssignPharmacy(kernel.NewUUID(), testNow))

		err := o.Reject(kernel.NewUUID(), "out of stock", testNow)
		require.ErrorIs(t, err, order.ErrPharmacyNotAuthorized)
	})
}

func TestOrder_TransitionTo(t *testing.T) {
	t.Run("walks the happy path", func(t *testing.T) {
		o := newTestOrder(t)
		pharmacyID := kernel.NewUUID()
		require.NoError(t, o.AssignPharmacy(pharmacyID, testNow))
		require.NoError(t, o.Accept(pharmacyID, "", testNow))

		for _, next := range []order.Status{
			order.Preparing, order.ReadyForPickup, order.OutForDelivery, order.Delivered,
		} {
			require.NoError(t, o.TransitionTo(next, testNow))
			assert.Equal(t, next, o.Status())
		}
	})

	t.Run("rejects transitions outside the table", func(t *testing.T) {
		o := newTestOrder(t)

		require.Error(t, o.TransitionTo(order.Delivered, testNow))
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("enforces pharmacy consistency", func(t *testing.T) {
		o := newTestOrder(t)

		// Pending -> PharmacyAssigned is in the table, but without a pharmacy
		// the consistency check must reject it.
		require.Error(t, o.TransitionTo(order.PharmacyAssigned, testNow))
	})
}

func TestOrder_ForceTransitionTo(t *testing.T) {
	t.Run("bypasses the transition table", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.AssignPharmacy(kernel.NewUUID(), testNow))
		require.NoError(t, o.ForceTransitionTo(order.Refunded, testNow))

		assert.Equal(t, order.Refunded, o.Status())
	})

	t.Run("still rejects undefined statuses", func(t *testing.T) {
		o := newTestOrder(t)
		require.Error(t, o.ForceTransitionTo(order.Status(42), testNow))
	})
}

func TestOrder_SetDeliveryFee(t *testing.T) {
	o := newTestOrder(t)
	total := o.TotalAmount()

	require.NoError(t, o.SetDeliveryFee(40, testNow))

	assert.InDelta(t, 40, o.DeliveryFee(), 1e-9)
	assert.InDelta(t, total+40, o.FinalAmount(), 1e-9)

	require.Error(t, o.SetDeliveryFee(-1, testNow))
}

func TestRestoreOrder(t *testing.T) {
	t.Run("round trips an assigned order", func(t *testing.T) {
		o := newTestOrder(t)
		pharmacyID := kernel.NewUUID()
		require.NoError(t, o.AssignPharmacy(pharmacyID, testNow))

		restored, err := order.RestoreOrder(order.RestoreOrderParams{
			ID:              o.ID(),
			OrderNumber:     o.OrderNumber(),
			PrescriptionID:  o.PrescriptionID(),
			PatientID:       o.PatientID(),
			PharmacyID:      o.Pharmacy(),
			Status:          o.Status(),
			OrderType:       o.OrderType(),
			TotalAmount:     o.TotalAmount(),
			DeliveryFee:     o.DeliveryFee(),
			DeliveryAddress: o.DeliveryAddress(),
			DeliveryPincode: o.DeliveryPincode(),
			Items:           o.Items(),
			Version:         o.Version(),
			CreatedAt:       o.CreatedAt(),
			UpdatedAt:       o.UpdatedAt(),
		})
		require.NoError(t, err)

		assert.True(t, restored.IsEqual(o))
		assert.Equal(t, order.PharmacyAssigned, restored.Status())
		assert.InDelta(t, o.FinalAmount(), restored.FinalAmount(), 1e-9)
	})

	t.Run("rejects inconsistent pharmacy assignment", func(t *testing.T) {
		o := newTestOrder(t)
		pharmacyID := kernel.NewUUID()

		_, err := order.RestoreOrder(order.RestoreOrderParams{
			ID:              o.ID(),
			OrderNumber:     o.OrderNumber(),
			PrescriptionID:  o.PrescriptionID(),
			PatientID:       o.PatientID(),
			PharmacyID:      &pharmacyID,
			Status:          order.Pending,
			OrderType:       o.OrderType(),
			DeliveryAddress: o.DeliveryAddress(),
			DeliveryPincode: o.DeliveryPincode(),
			Items:           o.Items(),
			Version:         1,
			CreatedAt:       testNow,
			UpdatedAt:       testNow,
		})
		require.Error(t, err)
	})
}

func TestOrder_Validate_ZeroValue(t *testing.T) {
	var o order.Order

	require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)

	var nilOrder *order.Order
	require.ErrorIs(t, nilOrder.Validate(), order.ErrOrderIsNotConstructed)
}
