package domain

import "strings"

type Role string

const (
	RoleMember Role = "MEMBER"
	RoleAdmin  Role = "ADMIN"
)

func ParseRole(s string) (Role, error) {
	switch r := Role(strings.ToUpper(strings.TrimSpace(s))); r {
	case RoleMember, RoleAdmin:
		return r, nil
	}
	return "", ErrInvalidRole
}

// Status is the approval lifecycle shared by withdrawals and loans.
type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

func (s Status) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected
}

type Method string

const (
	MethodCash         Method = "CASH"
	MethodBankTransfer Method = "BANK_TRANSFER"
	MethodMobileMoney  Method = "MOBILE_MONEY"
	MethodCheque       Method = "CHEQUE"
)

func ParseMethod(s string) (Method, error) {
	switch m := Method(strings.ToUpper(strings.TrimSpace(s))); m {
	case MethodCash, MethodBankTransfer, MethodMobileMoney, MethodCheque:
		return m, nil
	}
	return "", ErrInvalidMethod
}

type CategoryType string

const (
	CategoryHousing   CategoryType = "HOUSING"
	CategoryFood      CategoryType = "FOOD"
	CategoryTransport CategoryType = "TRANSPORT"
	CategoryUtilities CategoryType = "UTILITIES"
	CategoryEducation CategoryType = "EDUCATION"
	CategoryHealth    CategoryType = "HEALTH"
	CategorySavings   CategoryType = "SAVINGS"
	CategoryOther     CategoryType = "OTHER"
)

func ParseCategoryType(s string) (CategoryType, error) {
	switch c := CategoryType(strings.ToUpper(strings.TrimSpace(s))); c {
	case CategoryHousing, CategoryFood, CategoryTransport, CategoryUtilities,
		CategoryEducation, CategoryHealth, CategorySavings, CategoryOther:
		return c, nil
	}
	return "", ErrInvalidCategoryType
}

type RecommendationKind string

const (
	RecommendEmergencyFund    RecommendationKind = "EMERGENCY_FUND"
	RecommendDebtAcceleration RecommendationKind = "DEBT_ACCELERATION"
	RecommendHousingBudget    RecommendationKind = "HOUSING_BUDGET"
)
