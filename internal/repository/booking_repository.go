package repository

import (
	"context"
	"database/sql"

	"github.com/helenus/hotel-api/internal/model"
)

// BookingRepo provides CRUD operations for bookings and their line items.
// A booking groups one or more room stays reserved by a single user.  Line
// items are stored in the booking_items table; header and items are
// inserted inside one transaction so a booking is never visible half
// written.  All timestamp fields are stored in UTC.
type BookingRepo struct {
	db *sql.DB
}

// NewBookingRepo returns a new BookingRepo bound to the given database.
func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{db: db} }

// Create inserts the booking header and all line items in a single
// transaction and populates the generated IDs on the provided record.
func (r *BookingRepo) Create(ctx context.Context, b *model.Booking) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	const hq = `INSERT INTO bookings
		(reference, user_id, total_amount_cents, status, payment_method, is_paid, paid_at, transaction_id, special_requests)
		VALUES (?,?,?,?,?,?,?,?,?)`
	res, err := tx.ExecContext(ctx, hq,
		b.Reference, b.UserID, b.TotalAmountCents, b.Status,
		b.Payment.Method, b.Payment.IsPaid, b.Payment.PaidAt, b.Payment.TransactionID,
		b.SpecialRequests)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	b.ID = uint64(id)

	const iq = `INSERT INTO booking_items
		(booking_id, room_id, room_title, room_type, check_in, check_out, guests, price_per_night_cents, total_nights, subtotal_cents)
		VALUES (?,?,?,?,?,?,?,?,?,?)`
	for i := range b.Items {
		it := &b.Items[i]
		it.BookingID = b.ID
		ires, err := tx.ExecContext(ctx, iq,
			it.BookingID, it.RoomID, it.RoomTitle, it.RoomType,
			it.CheckIn, it.CheckOut, it.Guests,
			it.PricePerNightCents, it.TotalNights, it.SubtotalCents)
		if err != nil {
			return err
		}
		iid, err := ires.LastInsertId()
		if err != nil {
			return err
		}
		it.ID = uint64(iid)
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}

// ListByUser returns the bookings of one user, newest first, with line
// items attached.
func (r *BookingRepo) ListByUser(ctx context.Context, userID uint64) ([]model.Booking, error) {
	const hq = `SELECT id, reference, user_id, total_amount_cents, status,
		payment_method, is_paid, paid_at, transaction_id, special_requests, created_at, updated_at
		FROM bookings WHERE user_id=? ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, hq, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var (
		out []model.Booking
		ids []any
	)
	for rows.Next() {
		var (
			b      model.Booking
			paidAt sql.NullTime
		)
		if err := rows.Scan(&b.ID, &b.Reference, &b.UserID, &b.TotalAmountCents, &b.Status,
			&b.Payment.Method, &b.Payment.IsPaid, &paidAt, &b.Payment.TransactionID,
			&b.SpecialRequests, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, err
		}
		if paidAt.Valid {
			t := paidAt.Time
			b.Payment.PaidAt = &t
		}
		out = append(out, b)
		ids = append(ids, b.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return out, nil
	}

	ph := ""
	for i := range ids {
		if i > 0 {
			ph += ","
		}
		ph += "?"
	}
	irows, err := r.db.QueryContext(ctx,
		"SELECT id, booking_id, room_id, room_title, room_type, check_in, check_out, guests, price_per_night_cents, total_nights, subtotal_cents FROM booking_items WHERE booking_id IN ("+ph+") ORDER BY id",
		ids...)
	if err != nil {
		return nil, err
	}
	defer irows.Close()

	byBooking := make(map[uint64][]model.BookingItem, len(out))
	for irows.Next() {
		var it model.BookingItem
		if err := irows.Scan(&it.ID, &it.BookingID, &it.RoomID, &it.RoomTitle, &it.RoomType,
			&it.CheckIn, &it.CheckOut, &it.Guests,
			&it.PricePerNightCents, &it.TotalNights, &it.SubtotalCents); err != nil {
			return nil, err
		}
		byBooking[it.BookingID] = append(byBooking[it.BookingID], it)
	}
	if err := irows.Err(); err != nil {
		return nil, err
	}
	for i := range out {
		out[i].Items = byBooking[out[i].ID]
	}
	return out, nil
}

// CountByUser reports how many bookings a user has placed.
func (r *BookingRepo) CountByUser(ctx context.Context, userID uint64) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM bookings WHERE user_id=?", userID).Scan(&n)
	return n, err
}
