package service

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/helenus/hotel-api/internal/model"
	"github.com/helenus/hotel-api/internal/repository"
)

// In-memory fakes backing the service tests.  Each fake implements the
// narrow store interface its service consumes and records enough state for
// assertions.  Error fields force a failure on the next matching call.

type fakeUsers struct {
	mu     sync.Mutex
	nextID uint64
	byID   map[uint64]model.User
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{nextID: 1, byID: map[uint64]model.User{}}
}

func (f *fakeUsers) add(u model.User) model.User {
	f.mu.Lock()
	defer f.mu.Unlock()
	u.ID = f.nextID
	f.nextID++
	f.byID[u.ID] = u
	return u
}

func (f *fakeUsers) Create(ctx context.Context, u *model.User) (uint64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, ex := range f.byID {
		if ex.Email == u.Email {
			return 0, repository.ErrEmailExists
		}
		if ex.UserName == u.UserName {
			return 0, repository.ErrUserNameExists
		}
	}
	u.ID = f.nextID
	f.nextID++
	f.byID[u.ID] = *u
	return u.ID, nil
}

func (f *fakeUsers) GetByEmail(ctx context.Context, email string) (model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.byID {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return model.User{}, repository.ErrUserNotFound
}

func (f *fakeUsers) GetByUserName(ctx context.Context, name string) (model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.byID {
		if u.UserName == name {
			return u, nil
		}
	}
	return model.User{}, repository.ErrUserNotFound
}

func (f *fakeUsers) GetByID(ctx context.Context, id uint64) (model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.byID[id]
	if !ok {
		return model.User{}, repository.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUsers) GetByIDs(ctx context.Context, ids []uint64) (map[uint64]model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(map[uint64]model.User, len(ids))
	for _, id := range ids {
		if u, ok := f.byID[id]; ok {
			out[id] = u
		}
	}
	return out, nil
}

func (f *fakeUsers) MarkVerified(ctx context.Context, id uint64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.byID[id]
	if !ok {
		return repository.ErrUserNotFound
	}
	u.IsVerified = true
	f.byID[id] = u
	return nil
}

type fakeTokens struct {
	mu      sync.Mutex
	nextID  uint64
	byToken map[string]model.VerificationToken
}

func newFakeTokens() *fakeTokens {
	return &fakeTokens{nextID: 1, byToken: map[string]model.VerificationToken{}}
}

func (f *fakeTokens) Create(ctx context.Context, userID uint64, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.byToken[token] = model.VerificationToken{ID: f.nextID, UserID: userID, Token: token}
	f.nextID++
	return nil
}

func (f *fakeTokens) GetByToken(ctx context.Context, token string) (model.VerificationToken, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.byToken[token]
	if !ok {
		return model.VerificationToken{}, repository.ErrTokenNotFound
	}
	return t, nil
}

func (f *fakeTokens) Delete(ctx context.Context, id uint64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for k, t := range f.byToken {
		if t.ID == id {
			delete(f.byToken, k)
			return nil
		}
	}
	return repository.ErrTokenNotFound
}

type fakeRooms struct {
	mu     sync.Mutex
	nextID uint64
	byID   map[uint64]model.Room

	updateErr error
}

func newFakeRooms() *fakeRooms {
	return &fakeRooms{nextID: 1, byID: map[uint64]model.Room{}}
}

func (f *fakeRooms) add(rm model.Room) model.Room {
	f.mu.Lock()
	defer f.mu.Unlock()
	rm.ID = f.nextID
	f.nextID++
	f.byID[rm.ID] = rm
	return rm
}

func (f *fakeRooms) Create(ctx context.Context, rm *model.Room) (uint64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, ex := range f.byID {
		if ex.RoomNumber == rm.RoomNumber {
			return 0, repository.ErrRoomNumberExists
		}
	}
	rm.ID = f.nextID
	f.nextID++
	f.byID[rm.ID] = *rm
	return rm.ID, nil
}

func (f *fakeRooms) GetByID(ctx context.Context, id uint64) (model.Room, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rm, ok := f.byID[id]
	if !ok {
		return model.Room{}, repository.ErrRoomNotFound
	}
	return rm, nil
}

func (f *fakeRooms) List(ctx context.Context) ([]model.Room, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]model.Room, 0, len(f.byID))
	for _, rm := range f.byID {
		out = append(out, rm)
	}
	return out, nil
}

func (f *fakeRooms) Update(ctx context.Context, rm *model.Room) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.updateErr != nil {
		return f.updateErr
	}
	if _, ok := f.byID[rm.ID]; !ok {
		return repository.ErrRoomNotFound
	}
	f.byID[rm.ID] = *rm
	return nil
}

func (f *fakeRooms) UpdateRating(ctx context.Context, id uint64, rating float64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	rm, ok := f.byID[id]
	if !ok {
		return repository.ErrRoomNotFound
	}
	rm.StarRating = rating
	f.byID[id] = rm
	return nil
}

func (f *fakeRooms) Delete(ctx context.Context, id uint64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byID[id]; !ok {
		return repository.ErrRoomNotFound
	}
	delete(f.byID, id)
	return nil
}

type fakeReviews struct {
	mu     sync.Mutex
	nextID uint64
	all    []model.Review
}

func newFakeReviews() *fakeReviews { return &fakeReviews{nextID: 1} }

func (f *fakeReviews) Create(ctx context.Context, rv *model.Review) (uint64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rv.ID = f.nextID
	f.nextID++
	f.all = append(f.all, *rv)
	return rv.ID, nil
}

func (f *fakeReviews) ListByRoom(ctx context.Context, roomID uint64) ([]model.Review, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.Review
	for i := len(f.all) - 1; i >= 0; i-- { // newest first
		if f.all[i].RoomID == roomID {
			out = append(out, f.all[i])
		}
	}
	return out, nil
}

func (f *fakeReviews) RatingsByRoom(ctx context.Context, roomID uint64) ([]float64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []float64
	for _, rv := range f.all {
		if rv.RoomID == roomID {
			out = append(out, rv.Rating)
		}
	}
	return out, nil
}

func (f *fakeReviews) Delete(ctx context.Context, id uint64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, rv := range f.all {
		if rv.ID == id {
			f.all = append(f.all[:i], f.all[i+1:]...)
			return nil
		}
	}
	return repository.ErrReviewNotFound
}

type fakeBookings struct {
	mu        sync.Mutex
	nextID    uint64
	all       []model.Booking
	createErr error
}

func newFakeBookings() *fakeBookings { return &fakeBookings{nextID: 1} }

func (f *fakeBookings) Create(ctx context.Context, b *model.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	b.ID = f.nextID
	f.nextID++
	f.all = append(f.all, *b)
	return nil
}

func (f *fakeBookings) ListByUser(ctx context.Context, userID uint64) ([]model.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.Booking
	for _, b := range f.all {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

type fakeGallery struct {
	mu     sync.Mutex
	nextID uint64
	byID   map[uint64]model.GalleryEntry
}

func newFakeGallery() *fakeGallery {
	return &fakeGallery{nextID: 1, byID: map[uint64]model.GalleryEntry{}}
}

func (f *fakeGallery) Create(ctx context.Context, g *model.GalleryEntry) (uint64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	g.ID = f.nextID
	f.nextID++
	f.byID[g.ID] = *g
	return g.ID, nil
}

func (f *fakeGallery) GetByID(ctx context.Context, id uint64) (model.GalleryEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	g, ok := f.byID[id]
	if !ok {
		return model.GalleryEntry{}, repository.ErrGalleryNotFound
	}
	return g, nil
}

func (f *fakeGallery) List(ctx context.Context) ([]model.GalleryEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]model.GalleryEntry, 0, len(f.byID))
	for _, g := range f.byID {
		out = append(out, g)
	}
	return out, nil
}

func (f *fakeGallery) Update(ctx context.Context, g *model.GalleryEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byID[g.ID]; !ok {
		return repository.ErrGalleryNotFound
	}
	f.byID[g.ID] = *g
	return nil
}

func (f *fakeGallery) Delete(ctx context.Context, id uint64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byID[id]; !ok {
		return repository.ErrGalleryNotFound
	}
	delete(f.byID, id)
	return nil
}

// fakeStore is an in-memory object store.  removeErr forces the next
// Remove to fail, signErr the next SignedURL.
type fakeStore struct {
	mu        sync.Mutex
	objects   map[string][]byte
	removed   []string
	putErr    error
	removeErr error
	signErr   error
}

func newFakeStore() *fakeStore { return &fakeStore{objects: map[string][]byte{}} }

func (f *fakeStore) Put(ctx context.Context, key, contentType string, data []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.putErr != nil {
		return f.putErr
	}
	f.objects[key] = data
	return nil
}

func (f *fakeStore) Remove(ctx context.Context, keys []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.removeErr != nil {
		return f.removeErr
	}
	for _, k := range keys {
		delete(f.objects, k)
		f.removed = append(f.removed, k)
	}
	return nil
}

func (f *fakeStore) SignedURL(ctx context.Context, key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.signErr != nil {
		return "", f.signErr
	}
	if key == "" {
		return "", errors.New("invalid object key")
	}
	return "https://signed.example/" + key, nil
}

// fakeMailer records outgoing mail and can fail selectively per kind.
type fakeMailer struct {
	mu sync.Mutex

	verifications []string // tokens sent
	alerts        int
	confirmations int
	contacts      int

	verifyErr  error
	alertErr   error
	confirmErr error
	contactErr error
}

func (f *fakeMailer) SendVerification(to, name, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.verifyErr != nil {
		return f.verifyErr
	}
	f.verifications = append(f.verifications, token)
	return nil
}

func (f *fakeMailer) SendBookingAlert(guestName, guestEmail string, b *model.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.alertErr != nil {
		return f.alertErr
	}
	f.alerts++
	return nil
}

func (f *fakeMailer) SendBookingConfirmation(to, name string, b *model.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.confirmErr != nil {
		return f.confirmErr
	}
	f.confirmations++
	return nil
}

func (f *fakeMailer) SendContact(name, fromEmail, subject, message string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.contactErr != nil {
		return f.contactErr
	}
	f.contacts++
	return nil
}
