package service

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"offboarding-service/internal/apperror"
)

// validateSubmission checks the submission field by field in a fixed order
// and returns either a normalized copy or the first failing rule. It touches
// no storage, so error messages are deterministic for any given payload.
func validateSubmission(input SubmitInput) (SubmitInput, error) {
	input.EmpName = strings.TrimSpace(input.EmpName)
	input.Position = strings.TrimSpace(input.Position)
	input.Department = strings.TrimSpace(input.Department)
	input.EmpID = strings.TrimSpace(input.EmpID)
	input.Feedback = strings.TrimSpace(input.Feedback)
	input.Acknowledgment = strings.TrimSpace(input.Acknowledgment)

	if !validName(input.EmpName) {
		return SubmitInput{}, apperror.New(apperror.CodeValidation,
			"Employee name must be letters only, each word starting with an uppercase letter, separated by single spaces")
	}

	if !validPosition(input.Position) {
		return SubmitInput{}, apperror.New(apperror.CodeValidation,
			"Position must be letters only, words separated by single spaces")
	}

	if !validDepartment(input.Department) {
		return SubmitInput{}, apperror.New(apperror.CodeValidation,
			"Department must be one of: Engineering, Marketing, HR, Finance")
	}

	if !validEmployeeID(input.EmpID) {
		return SubmitInput{}, apperror.New(apperror.CodeValidation,
			"Employee ID must be ATS0 followed by three digits (001-999)")
	}

	if !validText(input.Feedback, 500) {
		return SubmitInput{}, apperror.New(apperror.CodeValidation,
			"Feedback must be 1-500 characters and contain at least one letter")
	}

	if !validText(input.Acknowledgment, 300) {
		return SubmitInput{}, apperror.New(apperror.CodeValidation,
			"Acknowledgment must be 1-300 characters and contain at least one letter")
	}

	if input.FinalSalary == nil || *input.FinalSalary < 1000 || *input.FinalSalary > 1000000 {
		return SubmitInput{}, apperror.New(apperror.CodeValidation,
			"Final salary must be a number between 1000 and 1000000")
	}

	if input.Bonus == nil || *input.Bonus < 0 || *input.Bonus > 100000 {
		return SubmitInput{}, apperror.New(apperror.CodeValidation,
			"Bonus must be a number between 0 and 100000")
	}

	return input, nil
}

// validName accepts words of letters separated by single spaces, each word
// starting uppercase. Splitting on a bare space makes a double, leading or
// trailing space produce an empty word, which is rejected.
func validName(name string) bool {
	if name == "" {
		return false
	}
	for _, word := range strings.Split(name, " ") {
		if word == "" {
			return false
		}
		for i, r := range word {
			if !unicode.IsLetter(r) {
				return false
			}
			if i == 0 && !unicode.IsUpper(r) {
				return false
			}
		}
	}
	return true
}

// validPosition is the same word shape without the uppercase requirement.
func validPosition(position string) bool {
	if position == "" {
		return false
	}
	for _, word := range strings.Split(position, " ") {
		if word == "" {
			return false
		}
		for _, r := range word {
			if !unicode.IsLetter(r) {
				return false
			}
		}
	}
	return true
}

func validDepartment(department string) bool {
	for _, d := range Departments {
		if department == d {
			return true
		}
	}
	return false
}

// validEmployeeID requires the literal prefix ATS0 and exactly three digits;
// 000 is excluded, so ATS0001..ATS0999 is the accepted range.
func validEmployeeID(id string) bool {
	if len(id) != 7 || id[:4] != "ATS0" {
		return false
	}
	digits := id[4:]
	for _, r := range digits {
		if r < '0' || r > '9' {
			return false
		}
	}
	return digits != "000"
}

// validText bounds the rune count and rejects content with no letters at
// all, so digit-only or punctuation-only text does not pass.
func validText(text string, maxLen int) bool {
	length := utf8.RuneCountInString(text)
	if length < 1 || length > maxLen {
		return false
	}
	for _, r := range text {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}
