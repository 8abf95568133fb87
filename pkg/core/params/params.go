// Package params defines the immutable parameter bundles that drive a
// projection run. Bundles are plain value structs: callers construct one
// (usually from Default), validate it, and hand it to the model. Nothing in
// this package mutates a bundle after construction; sweeps operate on clones.
package params

import (
	"fmt"
	"strings"
)

// VehicleClass enumerates the supported vehicle cost profiles.
type VehicleClass string

const (
	ClassElectric VehicleClass = "electric"
	ClassHybrid   VehicleClass = "hybrid"
	ClassGasoline VehicleClass = "gasoline"
	ClassDiesel   VehicleClass = "diesel"
)

// ParseVehicleClass normalizes user input ("Electric Vehicle", "GASOLINE", ...)
// to a VehicleClass. Unknown classes are rejected, never defaulted.
func ParseVehicleClass(s string) (VehicleClass, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "electric", "electric vehicle", "ev":
		return ClassElectric, nil
	case "hybrid":
		return ClassHybrid, nil
	case "gasoline", "gas":
		return ClassGasoline, nil
	case "diesel":
		return ClassDiesel, nil
	}
	return "", fmt.Errorf("vehicle.class: unknown vehicle class %q", s)
}

// Partnership tiers and their revenue multipliers.
const (
	TierBasic      = "Basic"
	TierPremium    = "Premium"
	TierEnterprise = "Enterprise"
)

var tierMultipliers = map[string]float64{
	TierBasic:      1.0,
	TierPremium:    1.5,
	TierEnterprise: 2.5,
}

// UserGrowth configures the population recurrence.
type UserGrowth struct {
	InitialUsers      int     `json:"initial_users" yaml:"initial_users"`
	MonthlyGrowthRate float64 `json:"monthly_growth_rate" yaml:"monthly_growth_rate"`
	MonthlyChurnRate  float64 `json:"monthly_churn_rate" yaml:"monthly_churn_rate"`
	EngagementRate    float64 `json:"engagement_rate" yaml:"engagement_rate"`
}

// ServiceProviders configures the service-booking commission stream.
type ServiceProviders struct {
	AvgCommissionRate  float64 `json:"avg_commission_rate" yaml:"avg_commission_rate"`
	BookingsPer1kUsers float64 `json:"bookings_per_1k_users" yaml:"bookings_per_1k_users"`
	AvgServiceValue    float64 `json:"avg_service_value" yaml:"avg_service_value"`
}

// Insurance configures referral, claims-processing and retention revenue.
type Insurance struct {
	ReferralCommission   float64 `json:"referral_commission" yaml:"referral_commission"`
	ConversionRate       float64 `json:"conversion_rate" yaml:"conversion_rate"`
	ClaimsProcessingFee  float64 `json:"claims_processing_fee" yaml:"claims_processing_fee"`
	ClaimsPer1kUsers     float64 `json:"claims_per_1k_users" yaml:"claims_per_1k_users"`
	PolicyRetentionBonus float64 `json:"policy_retention_bonus" yaml:"policy_retention_bonus"`
}

// PartsRetail configures the parts/retail order commission stream.
type PartsRetail struct {
	CommissionRate   float64 `json:"commission_rate" yaml:"commission_rate"`
	OrdersPer1kUsers float64 `json:"orders_per_1k_users" yaml:"orders_per_1k_users"`
	AvgOrderValue    float64 `json:"avg_order_value" yaml:"avg_order_value"`
	ReturnRate       float64 `json:"return_rate" yaml:"return_rate"`
}

// FinancialServices configures subscription and transaction fees.
type FinancialServices struct {
	MonthlyFeePerUser   float64 `json:"monthly_fee_per_user" yaml:"monthly_fee_per_user"`
	ConnectionRate      float64 `json:"connection_rate" yaml:"connection_rate"`
	TransactionFee      float64 `json:"transaction_fee" yaml:"transaction_fee"`
	TransactionsPerUser float64 `json:"transactions_per_user" yaml:"transactions_per_user"`
	PremiumUpgradeRate  float64 `json:"premium_upgrade_rate" yaml:"premium_upgrade_rate"`
}

// DataServices configures data/API licensing revenue.
type DataServices struct {
	QueriesPerUser       float64 `json:"queries_per_user" yaml:"queries_per_user"`
	PricePerQuery        float64 `json:"price_per_query" yaml:"price_per_query"`
	LicenseFeePerPartner float64 `json:"license_fee_per_partner" yaml:"license_fee_per_partner"`
}

// Vehicle configures the TCO variant's cost subject.
type Vehicle struct {
	Class          VehicleClass `json:"class" yaml:"class"`
	BasePrice      float64      `json:"base_price" yaml:"base_price"`
	AnnualMileage  int          `json:"annual_mileage" yaml:"annual_mileage"`
	OwnershipYears int          `json:"ownership_years" yaml:"ownership_years"`
}

// Market holds external price assumptions. InflationRate is a yearly fraction
// and compounds against every cost category.
type Market struct {
	FuelPrice       float64 `json:"fuel_price" yaml:"fuel_price"`
	ElectricityRate float64 `json:"electricity_rate" yaml:"electricity_rate"`
	InflationRate   float64 `json:"inflation_rate" yaml:"inflation_rate"`
}

// Partnership holds tier and partner rosters. Only the cardinality of the
// rosters affects revenue, not the names themselves.
type Partnership struct {
	Tier                string   `json:"tier" yaml:"tier"`
	PartnerCount        int      `json:"partner_count" yaml:"partner_count"`
	ServiceProviders    []string `json:"service_providers" yaml:"service_providers"`
	InsurancePartners   []string `json:"insurance_partners" yaml:"insurance_partners"`
	PartsRetailers      []string `json:"parts_retailers" yaml:"parts_retailers"`
	FuelPartners        []string `json:"fuel_partners" yaml:"fuel_partners"`
	FinancialServices   []string `json:"financial_services" yaml:"financial_services"`
	DataProviders       []string `json:"data_providers" yaml:"data_providers"`
	EnterpriseSolutions []string `json:"enterprise_solutions" yaml:"enterprise_solutions"`
}

// TierMultiplier resolves the tier's revenue multiplier. Unknown tiers fall
// back to the Premium multiplier (1.5). This is a documented contract of the
// model, not a silent default.
func (p Partnership) TierMultiplier() float64 {
	if m, ok := tierMultipliers[p.Tier]; ok {
		return m
	}
	return tierMultipliers[TierPremium]
}

// Bundle aggregates every sub-config for one run.
type Bundle struct {
	UserGrowth        UserGrowth        `json:"user_growth" yaml:"user_growth"`
	ServiceProviders  ServiceProviders  `json:"service_providers" yaml:"service_providers"`
	Insurance         Insurance         `json:"insurance" yaml:"insurance"`
	PartsRetail       PartsRetail       `json:"parts_retail" yaml:"parts_retail"`
	FinancialServices FinancialServices `json:"financial_services" yaml:"financial_services"`
	DataServices      DataServices      `json:"data_services" yaml:"data_services"`
	Vehicle           Vehicle           `json:"vehicle" yaml:"vehicle"`
	Market            Market            `json:"market" yaml:"market"`
	Partnership       Partnership       `json:"partnership" yaml:"partnership"`
}

// Default returns the baseline bundle. User-base and stream defaults mirror
// the dashboard's initial slider positions; vehicle, market and partnership
// defaults mirror the TCO model's dataclass defaults.
func Default() Bundle {
	return Bundle{
		UserGrowth: UserGrowth{
			InitialUsers:      25000,
			MonthlyGrowthRate: 0.08,
			MonthlyChurnRate:  0.03,
			EngagementRate:    0.65,
		},
		ServiceProviders: ServiceProviders{
			AvgCommissionRate:  0.12,
			BookingsPer1kUsers: 25,
			AvgServiceValue:    200,
		},
		Insurance: Insurance{
			ReferralCommission:   75,
			ConversionRate:       0.035,
			ClaimsProcessingFee:  15,
			ClaimsPer1kUsers:     8,
			PolicyRetentionBonus: 25,
		},
		PartsRetail: PartsRetail{
			CommissionRate:   0.08,
			OrdersPer1kUsers: 45,
			AvgOrderValue:    125,
			ReturnRate:       0.05,
		},
		FinancialServices: FinancialServices{
			MonthlyFeePerUser:   2.5,
			ConnectionRate:      0.45,
			TransactionFee:      0.25,
			TransactionsPerUser: 12,
			PremiumUpgradeRate:  0.15,
		},
		DataServices: DataServices{
			QueriesPerUser:       20,
			PricePerQuery:        0.05,
			LicenseFeePerPartner: 500,
		},
		Vehicle: Vehicle{
			Class:          ClassElectric,
			BasePrice:      45000,
			AnnualMileage:  15000,
			OwnershipYears: 5,
		},
		Market: Market{
			FuelPrice:       3.50,
			ElectricityRate: 0.12,
			InflationRate:   0.025,
		},
		Partnership: Partnership{
			Tier:                TierPremium,
			PartnerCount:        10,
			ServiceProviders:    []string{"Jiffy Lube", "Mechanics", "Dealerships", "Tire Centers"},
			InsurancePartners:   []string{"Policy Referrals", "Claims Processing"},
			PartsRetailers:      []string{"AutoZone", "Amazon", "RockAuto"},
			FuelPartners:        []string{"Shell", "GasBuddy"},
			FinancialServices:   []string{"Plaid", "Credit Cards", "QuickBooks"},
			DataProviders:       []string{"Jato", "KBB", "CARFAX"},
			EnterpriseSolutions: []string{"Dealership SaaS", "Fleet Management"},
		},
	}
}

// Clone returns a deep copy of the bundle. Partner rosters are the only
// reference fields.
func (b Bundle) Clone() Bundle {
	out := b
	out.Partnership.ServiceProviders = append([]string(nil), b.Partnership.ServiceProviders...)
	out.Partnership.InsurancePartners = append([]string(nil), b.Partnership.InsurancePartners...)
	out.Partnership.PartsRetailers = append([]string(nil), b.Partnership.PartsRetailers...)
	out.Partnership.FuelPartners = append([]string(nil), b.Partnership.FuelPartners...)
	out.Partnership.FinancialServices = append([]string(nil), b.Partnership.FinancialServices...)
	out.Partnership.DataProviders = append([]string(nil), b.Partnership.DataProviders...)
	out.Partnership.EnterpriseSolutions = append([]string(nil), b.Partnership.EnterpriseSolutions...)
	return out
}
