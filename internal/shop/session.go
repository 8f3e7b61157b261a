package shop

import (
	"strings"

	"github.com/PYTHTRADER/e-commerce/internal/models"
	"github.com/PYTHTRADER/e-commerce/internal/util"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Login starts a session for the email, replacing any existing session
// outright. Any syntactically plausible email gets an account in this
// model; format validation happens upstream. The display name is the
// email's local part and the avatar is deterministic per email.
func (s *Shop) Login(email string) *models.User {
	name := email
	if at := strings.Index(email, "@"); at > 0 {
		name = email[:at]
	}

	user := &models.User{
		ID:     "u-" + uuid.New().String(),
		Name:   name,
		Email:  email,
		Role:   models.RoleUser,
		Avatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=" + email,
		// A production build would load the user's saved addresses from
		// durable storage; this model seeds one default.
		Addresses: []models.Address{defaultAddress(name, email)},
	}

	s.mu.Lock()
	s.user = user
	s.mu.Unlock()

	util.SessionsStartedTotal.Inc()
	s.logger.Info("Session started", zap.String("user_id", user.ID), zap.String("email", email))
	return s.User()
}

// Logout discards the session. Cart contents are not preserved across
// logout; the cart and coupon are cleared with it.
func (s *Shop) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user != nil {
		s.logger.Info("Session ended", zap.String("user_id", s.user.ID))
	}
	s.user = nil
	s.clearCartLocked()
}

// SaveAddress appends an address to the session's saved collection under a
// fresh ID. Duplicates are permitted. Without an active session this is a
// no-op and returns false.
func (s *Shop) SaveAddress(addr models.Address) (models.Address, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return models.Address{}, false
	}

	addr.ID = "addr-" + uuid.New().String()
	s.user.Addresses = append(s.user.Addresses, addr)
	return addr, true
}

func defaultAddress(name, email string) models.Address {
	return models.Address{
		ID:         "addr-" + uuid.New().String(),
		FirstName:  name,
		Email:      email,
		Phone:      "+91 98765 43210",
		Street:     "42 MG Road",
		City:       "Bengaluru",
		PostalCode: "560001",
	}
}
