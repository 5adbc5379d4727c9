package view

import (
	"errors"
	"sync"

	"github.com/medidesk/medidesk/internal/domain/identity"
)

// ErrNoUser is returned by session operations that need authentication.
var ErrNoUser = errors.New("view: no authenticated user")

// Session is the per-client navigation state machine: NoUser until Login,
// then Authenticated with a current page; Logout returns it to NoUser and
// drops the patient selection.
type Session struct {
	mu       sync.Mutex
	user     *identity.User
	page     Page
	selected string
}

func NewSession() *Session {
	return &Session{}
}

func (s *Session) Authenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user != nil
}

func (s *Session) User() *identity.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

// Login enters the Authenticated state on the role's dashboard.
func (s *Session) Login(user *identity.User) (View, error) {
	if err := user.Validate(); err != nil {
		return View{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = user
	s.page = PageDashboard
	s.selected = ""
	return SelectView(user.Role, s.page, s.selected, user.ID), nil
}

func (s *Session) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	s.page = ""
	s.selected = ""
}

// Navigate moves the session to page, subject to the role allow-list; the
// session records the page the router actually resolved, so a fallback
// leaves the session on the fallback page.
func (s *Session) Navigate(page Page) (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return View{}, ErrNoUser
	}
	v := SelectView(s.user.Role, page, s.selected, s.user.ID)
	s.page = v.Page
	return v, nil
}

// ViewPatient selects a patient and navigates to their profile.
func (s *Session) ViewPatient(patientID string) (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return View{}, ErrNoUser
	}
	s.selected = patientID
	v := SelectView(s.user.Role, PagePatientProfile, s.selected, s.user.ID)
	s.page = v.Page
	return v, nil
}

// Current re-resolves the session's present page.
func (s *Session) Current() (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return View{}, ErrNoUser
	}
	return SelectView(s.user.Role, s.page, s.selected, s.user.ID), nil
}
