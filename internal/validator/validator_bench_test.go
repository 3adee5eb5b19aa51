package validator

import (
	"testing"

	"github.com/scottmc500/ScottLMS/internal/domain"
)

func BenchmarkValidateUser(b *testing.B) {
	v := NewValidator()
	u := &domain.User{
		Email:     "user@example.com",
		Username:  "user",
		FirstName: "Test",
		LastName:  "User",
		Role:      domain.RoleStudent,
	}
	for i := 0; i < b.N; i++ {
		_ = v.ValidateUser(u)
	}
}

func BenchmarkValidatePassword(b *testing.B) {
	info := PersonalInfo{Username: "user", Email: "user@example.com", FirstName: "Test", LastName: "User"}
	for i := 0; i < b.N; i++ {
		_ = ValidatePassword("Tr0ub4dor&Zq", info)
	}
}

func BenchmarkPasswordStrength(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = PasswordStrength("Tr0ub4dor&Zq")
	}
}
