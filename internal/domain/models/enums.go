package models

import (
	"strings"
)

// FilterOption is a single entry of a UI-facing filter dropdown.
type FilterOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type RoleCategory string

const (
	RoleEngineering     RoleCategory = "Engineering"
	RoleMarketing       RoleCategory = "Marketing"
	RoleFinance         RoleCategory = "Finance"
	RoleOperations      RoleCategory = "Operations"
	RoleSales           RoleCategory = "Sales"
	RoleHR              RoleCategory = "HR"
	RoleProduct         RoleCategory = "Product"
	RoleDesign          RoleCategory = "Design"
	RoleData            RoleCategory = "Data"
	RoleLegal           RoleCategory = "Legal"
	RoleCustomerSuccess RoleCategory = "Customer Success"
	RoleOther           RoleCategory = "Other"
)

var RoleCategories = []RoleCategory{
	RoleEngineering, RoleMarketing, RoleFinance, RoleOperations, RoleSales, RoleHR,
	RoleProduct, RoleDesign, RoleData, RoleLegal, RoleCustomerSuccess, RoleOther,
}

type City string

const (
	CityLondon     City = "London"
	CityManchester City = "Manchester"
	CityBirmingham City = "Birmingham"
	CityLeeds      City = "Leeds"
	CityBristol    City = "Bristol"
	CityEdinburgh  City = "Edinburgh"
	CityGlasgow    City = "Glasgow"
	CityLiverpool  City = "Liverpool"
	CityNewcastle  City = "Newcastle"
	CitySheffield  City = "Sheffield"
	CityCambridge  City = "Cambridge"
	CityOxford     City = "Oxford"
	CityCardiff    City = "Cardiff"
	CityBelfast    City = "Belfast"
	CityRemote     City = "Remote"
	CityOtherUK    City = "Other UK"
)

var Cities = []City{
	CityLondon, CityManchester, CityBirmingham, CityLeeds, CityBristol, CityEdinburgh,
	CityGlasgow, CityLiverpool, CityNewcastle, CitySheffield, CityCambridge, CityOxford,
	CityCardiff, CityBelfast, CityRemote, CityOtherUK,
}

type Industry string

const (
	IndustryTechnology           Industry = "Technology"
	IndustryFinTech              Industry = "FinTech"
	IndustrySaaS                 Industry = "SaaS"
	IndustryHealthcare           Industry = "Healthcare"
	IndustryECommerce            Industry = "E-commerce"
	IndustryProfessionalServices Industry = "Professional Services"
	IndustryFinancialServices    Industry = "Financial Services"
	IndustryManufacturing        Industry = "Manufacturing"
	IndustryRetail               Industry = "Retail"
	IndustryMedia                Industry = "Media"
	IndustryRealEstate           Industry = "Real Estate"
	IndustryEducation            Industry = "Education"
	IndustryEnergy               Industry = "Energy"
	IndustryRecruitment          Industry = "Recruitment"
	IndustryOther                Industry = "Other"
)

var Industries = []Industry{
	IndustryTechnology, IndustryFinTech, IndustrySaaS, IndustryHealthcare, IndustryECommerce,
	IndustryProfessionalServices, IndustryFinancialServices, IndustryManufacturing, IndustryRetail,
	IndustryMedia, IndustryRealEstate, IndustryEducation, IndustryEnergy, IndustryRecruitment,
	IndustryOther,
}

// ParseRoleCategory resolves raw input to a known role category, ignoring case and
// surrounding whitespace. The second result is false for empty or unknown input.
func ParseRoleCategory(raw string) (RoleCategory, bool) {
	return parseEnum(raw, RoleCategories)
}

func ParseCity(raw string) (City, bool) {
	return parseEnum(raw, Cities)
}

func ParseIndustry(raw string) (Industry, bool) {
	return parseEnum(raw, Industries)
}

func RoleCategoryOptions() []FilterOption {
	return options("All Departments", RoleCategories)
}

func CityOptions() []FilterOption {
	return options("All Locations", Cities)
}

func IndustryOptions() []FilterOption {
	return options("All Industries", Industries)
}

func parseEnum[T ~string](raw string, values []T) (T, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}
	for _, value := range values {
		if strings.EqualFold(raw, string(value)) {
			return value, true
		}
	}
	return "", false
}

func options[T ~string](allLabel string, values []T) []FilterOption {
	result := make([]FilterOption, 0, len(values)+1)
	result = append(result, FilterOption{Value: "", Label: allLabel})
	for _, value := range values {
		result = append(result, FilterOption{Value: string(value), Label: string(value)})
	}
	return result
}
