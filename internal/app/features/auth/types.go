package auth

import "github.com/thanachok11/CIS-Help-Me/internal/domain/models"

type registerRequest struct {
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	StudentID string `json:"studentId"`
	Residence string `json:"residence"`
	Password  string `json:"password"`
}

type loginRequest struct {
	StudentID string `json:"studentId"`
	Password  string `json:"password"`
}

type loginResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Token   string `json:"token"`
	Role    string `json:"role"`
}

type tokenResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
}

type usersResponse struct {
	Success bool          `json:"success"`
	Users   []models.User `json:"users"`
}
