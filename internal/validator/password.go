package validator

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// Password policy bounds.
const (
	MinPasswordLength = 8
	MaxPasswordLength = 128
)

const specialChars = `!@#$%^&*()_+-=[]{}|;:,.<>?`

var (
	commonPasswords = map[string]struct{}{
		"password": {}, "password123": {}, "123456": {}, "12345678": {}, "qwerty": {},
		"abc123": {}, "admin": {}, "letmein": {}, "welcome": {}, "monkey": {},
		"1234567890": {}, "password1": {}, "iloveyou": {}, "princess": {}, "rockyou": {},
		"123456789": {}, "12345": {}, "football": {},
	}

	sequentialRuns = []string{
		"012", "123", "234", "345", "456", "567", "678", "789", "890",
		"abc", "bcd", "cde", "def", "efg", "fgh", "ghi", "hij", "ijk", "jkl", "klm",
		"lmn", "mno", "nop", "opq", "pqr", "qrs", "rst", "stu", "tuv", "uvw", "vwx", "wxy", "xyz",
	}
)

// PersonalInfo is what a password must not contain.
type PersonalInfo struct {
	Username  string
	Email     string
	FirstName string
	LastName  string
}

// ValidatePassword returns every policy violation of password. An empty result means it is acceptable.
func ValidatePassword(password string, info PersonalInfo) []string {
	var problems []string

	length := len([]rune(password))
	if length < MinPasswordLength {
		problems = append(problems, fmt.Sprintf("Password must be at least %d characters long", MinPasswordLength))
	}
	if length > MaxPasswordLength {
		problems = append(problems, fmt.Sprintf("Password must be no more than %d characters long", MaxPasswordLength))
	}
	if !strings.ContainsFunc(password, unicode.IsLower) {
		problems = append(problems, "Password must contain at least one lowercase letter")
	}
	if !strings.ContainsFunc(password, unicode.IsUpper) {
		problems = append(problems, "Password must contain at least one uppercase letter")
	}
	if !strings.ContainsFunc(password, unicode.IsDigit) {
		problems = append(problems, "Password must contain at least one number")
	}
	if !strings.ContainsAny(password, specialChars) {
		problems = append(problems, "Password must contain at least one special character")
	}

	lower := strings.ToLower(password)
	if _, ok := commonPasswords[lower]; ok {
		problems = append(problems, "Password is too common, please choose a more unique password")
	}
	if hasSequentialRun(lower) {
		problems = append(problems, "Password should not contain sequential characters (e.g., 123, abc)")
	}
	if hasRepeatedRun(password) {
		problems = append(problems, "Password should not contain more than 2 repeated characters in a row")
	}
	if containsPersonalInfo(lower, info) {
		problems = append(problems, "Password should not contain personal information")
	}

	return problems
}

func hasSequentialRun(lower string) bool {
	for _, run := range sequentialRuns {
		if strings.Contains(lower, run) {
			return true
		}
	}
	return false
}

// hasRepeatedRun reports whether any character occurs three or more times in a row.
func hasRepeatedRun(password string) bool {
	var prev rune
	count := 0
	for _, r := range password {
		if count > 0 && r == prev {
			count++
		} else {
			prev, count = r, 1
		}
		if count >= 3 {
			return true
		}
	}
	return false
}

var emailLocalPart = regexp.MustCompile(`^([^@]+)@`)

func containsPersonalInfo(lower string, info PersonalInfo) bool {
	candidates := []string{info.Username, info.FirstName, info.LastName}
	if m := emailLocalPart.FindStringSubmatch(info.Email); m != nil {
		candidates = append(candidates, m[1])
	}
	for _, c := range candidates {
		c = strings.ToLower(strings.TrimSpace(c))
		if len([]rune(c)) > 2 && strings.Contains(lower, c) {
			return true
		}
	}
	return false
}

// PasswordStrength scores password from 0 to 100.
func PasswordStrength(password string) int {
	if password == "" {
		return 0
	}

	score := 0
	length := len([]rune(password))
	if length >= 8 {
		score += 25
	}
	if length >= 12 {
		score += 10
	}
	if length >= 16 {
		score += 10
	}
	if strings.ContainsFunc(password, unicode.IsLower) {
		score += 10
	}
	if strings.ContainsFunc(password, unicode.IsUpper) {
		score += 10
	}
	if strings.ContainsFunc(password, unicode.IsDigit) {
		score += 15
	}
	if strings.ContainsAny(password, specialChars) {
		score += 20
	}

	unique := make(map[rune]struct{}, length)
	for _, r := range password {
		unique[r] = struct{}{}
	}
	if float64(len(unique)) > float64(length)*0.7 {
		score += 10
	}

	if score > 100 {
		score = 100
	}
	return score
}

// StrengthLabel names a strength score.
func StrengthLabel(score int) string {
	switch {
	case score < 30:
		return "weak"
	case score < 60:
		return "fair"
	case score < 80:
		return "good"
	default:
		return "strong"
	}
}
