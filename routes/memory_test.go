package routes_test

import (
	"context"
	"strings"
	"sync"
	"time"

	"autobazaar/models"
	"autobazaar/repositories"
	"autobazaar/services"
)

// memStore là storage trong bộ nhớ cho test HTTP end-to-end
type memStore struct {
	mu       sync.Mutex
	users    map[uint]*models.User
	ads      map[uint]*models.Ad
	rates    []models.Rate
	comments map[uint]*models.Comment
	nextID   uint
}

func newMemStore() *memStore {
	return &memStore{
		users:    map[uint]*models.User{},
		ads:      map[uint]*models.Ad{},
		comments: map[uint]*models.Comment{},
	}
}

func (s *memStore) id() uint {
	s.nextID++
	return s.nextID
}

type memUsers struct{ *memStore }

func (r memUsers) Create(_ context.Context, u *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return repositories.ErrConflict
		}
	}
	u.ID = r.id()
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r memUsers) FindByID(_ context.Context, id uint) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r memUsers) FindByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r memUsers) FindByIDs(_ context.Context, ids []uint) ([]models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.User
	for _, id := range ids {
		if u, ok := r.users[id]; ok {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (r memUsers) FindAll(_ context.Context) ([]models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.User
	for id := uint(1); id <= r.nextID; id++ {
		if u, ok := r.users[id]; ok {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (r memUsers) Save(_ context.Context, u *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r memUsers) Delete(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.users, id)
	return nil
}

func (r memUsers) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.users)), nil
}

type memAds struct{ *memStore }

func (r memAds) Create(_ context.Context, ad *models.Ad) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	ad.ID = r.id()
	cp := *ad
	r.ads[ad.ID] = &cp
	return nil
}

func (r memAds) FindByID(_ context.Context, id uint) (*models.Ad, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ad, ok := r.ads[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	cp := *ad
	return &cp, nil
}

func (r memAds) list(keep func(models.Ad) bool) []models.Ad {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []models.Ad{}
	for id := uint(1); id <= r.nextID; id++ {
		if ad, ok := r.ads[id]; ok && keep(*ad) {
			out = append(out, *ad)
		}
	}
	return out
}

func (r memAds) FindAll(context.Context) ([]models.Ad, error) {
	return r.list(func(models.Ad) bool { return true }), nil
}

func (r memAds) FindByUserID(_ context.Context, userID uint) ([]models.Ad, error) {
	return r.list(func(ad models.Ad) bool { return ad.UserID == userID }), nil
}

func (r memAds) FindByDate(_ context.Context, date string) ([]models.Ad, error) {
	return r.list(func(ad models.Ad) bool { return ad.Date == date }), nil
}

func (r memAds) Search(_ context.Context, f repositories.AdFilter) ([]models.Ad, error) {
	q := strings.ToLower(f.Query)
	return r.list(func(ad models.Ad) bool {
		if f.Brand != "" && !strings.EqualFold(ad.Brand, f.Brand) {
			return false
		}
		if f.City != "" && !strings.EqualFold(ad.City, f.City) {
			return false
		}
		if f.Status != nil && ad.Status != *f.Status {
			return false
		}
		if q == "" {
			return true
		}
		for _, v := range []string{ad.TechnicalInfo, ad.Address, ad.City, ad.CarName, ad.AdditionalInfo, ad.Model, ad.Brand, ad.Color} {
			if strings.Contains(strings.ToLower(v), q) {
				return true
			}
		}
		return false
	}), nil
}

func (r memAds) apply(ad *models.Ad, fields map[string]interface{}) {
	for col, v := range fields {
		switch col {
		case "color":
			ad.Color = v.(string)
		case "price":
			ad.Price = v.(float64)
		case "status":
			ad.Status = v.(int)
		case "car_name":
			ad.CarName = v.(string)
		}
	}
	ad.UpdatedAt = time.Now()
}

func (r memAds) UpdateOwned(_ context.Context, id, ownerID uint, fields map[string]interface{}) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ad, ok := r.ads[id]
	if !ok || ad.UserID != ownerID {
		return false, nil
	}
	r.apply(ad, fields)
	return true, nil
}

func (r memAds) UpdateFields(_ context.Context, id uint, fields map[string]interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	ad, ok := r.ads[id]
	if !ok {
		return repositories.ErrNotFound
	}
	r.apply(ad, fields)
	return nil
}

func (r memAds) Delete(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.ads, id)
	return nil
}

func (r memAds) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.ads)), nil
}

type memRates struct{ *memStore }

func (r memRates) Create(_ context.Context, rate *models.Rate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.rates {
		if existing.UserID == rate.UserID && existing.AdID == rate.AdID {
			return repositories.ErrConflict
		}
	}
	rate.ID = r.id()
	r.rates = append(r.rates, *rate)
	return nil
}

func (r memRates) FindByUserAndAd(_ context.Context, userID, adID uint) (*models.Rate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rate := range r.rates {
		if rate.UserID == userID && rate.AdID == adID {
			cp := rate
			return &cp, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r memRates) FindByAdID(ctx context.Context, adID uint) ([]models.Rate, error) {
	return r.FindByAdIDs(ctx, []uint{adID})
}

func (r memRates) FindByAdIDs(_ context.Context, adIDs []uint) ([]models.Rate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	wanted := map[uint]bool{}
	for _, id := range adIDs {
		wanted[id] = true
	}
	out := []models.Rate{}
	for _, rate := range r.rates {
		if wanted[rate.AdID] {
			out = append(out, rate)
		}
	}
	return out, nil
}

type memComments struct{ *memStore }

func (r memComments) Create(_ context.Context, c *models.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.comments {
		if existing.UserID == c.UserID && existing.AdID == c.AdID {
			return repositories.ErrConflict
		}
	}
	c.ID = r.id()
	cp := *c
	r.comments[c.ID] = &cp
	return nil
}

func (r memComments) FindByID(_ context.Context, id uint) (*models.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.comments[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (r memComments) FindByUserAndAd(_ context.Context, userID, adID uint) (*models.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.comments {
		if c.UserID == userID && c.AdID == adID {
			cp := *c
			return &cp, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r memComments) FindByAdID(_ context.Context, adID uint) ([]models.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []models.Comment{}
	for id := uint(1); id <= r.nextID; id++ {
		if c, ok := r.comments[id]; ok && c.AdID == adID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r memComments) Delete(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.comments[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(r.comments, id)
	return nil
}

// memRevoker giữ danh sách token id đã logout
type memRevoker struct {
	mu      sync.Mutex
	revoked map[string]bool
}

func (m *memRevoker) Revoke(_ context.Context, claims *services.Claims) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.revoked[claims.Id] = true
	return nil
}

func (m *memRevoker) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.revoked[tokenID], nil
}
