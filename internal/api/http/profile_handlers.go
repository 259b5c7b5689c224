package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/studygrid/studygrid-lms/internal/catalog"
	"github.com/studygrid/studygrid-lms/internal/profile"
)

func GetProfileHandler(svc *profile.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, svc.Get())
	}
}

func UpdateProfileHandler(svc *profile.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var u profile.Update
		if err := json.NewDecoder(r.Body).Decode(&u); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		writeJSON(w, svc.Apply(u))
	}
}

func NotificationsHandler(svc *profile.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var n catalog.NotificationPrefs
		if err := json.NewDecoder(r.Body).Decode(&n); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		writeJSON(w, svc.SetNotifications(n))
	}
}

func ChangePasswordHandler(svc *profile.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var c profile.PasswordChange
		if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		if err := svc.ChangePassword(c); err != nil {
			switch {
			case errors.Is(err, profile.ErrPasswordMismatch),
				errors.Is(err, profile.ErrPasswordTooShort):
				http.Error(w, err.Error(), http.StatusBadRequest)
			case errors.Is(err, profile.ErrWrongPassword):
				http.Error(w, err.Error(), http.StatusForbidden)
			default:
				http.Error(w, err.Error(), http.StatusInternalServerError)
			}
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
