package params

import "fmt"

func checkFraction(field string, v float64) error {
	if v < 0 || v > 1 {
		return fmt.Errorf("%s: must be between 0 and 1, got %v", field, v)
	}
	return nil
}

func checkNonNegative(field string, v float64) error {
	if v < 0 {
		return fmt.Errorf("%s: must be >= 0, got %v", field, v)
	}
	return nil
}

// Validate checks every sub-config and returns the first violation with the
// offending field named. Degenerate-but-valid inputs (e.g. churn exceeding
// growth) pass validation: they produce degenerate outputs, not errors.
func (b Bundle) Validate() error {
	g := b.UserGrowth
	if g.InitialUsers < 0 {
		return fmt.Errorf("user_growth.initial_users: must be >= 0, got %d", g.InitialUsers)
	}
	if err := checkFraction("user_growth.monthly_growth_rate", g.MonthlyGrowthRate); err != nil {
		return err
	}
	if err := checkFraction("user_growth.monthly_churn_rate", g.MonthlyChurnRate); err != nil {
		return err
	}
	if err := checkFraction("user_growth.engagement_rate", g.EngagementRate); err != nil {
		return err
	}

	checks := []struct {
		field string
		err   error
	}{
		{"", checkFraction("service_providers.avg_commission_rate", b.ServiceProviders.AvgCommissionRate)},
		{"", checkNonNegative("service_providers.bookings_per_1k_users", b.ServiceProviders.BookingsPer1kUsers)},
		{"", checkNonNegative("service_providers.avg_service_value", b.ServiceProviders.AvgServiceValue)},
		{"", checkNonNegative("insurance.referral_commission", b.Insurance.ReferralCommission)},
		{"", checkFraction("insurance.conversion_rate", b.Insurance.ConversionRate)},
		{"", checkNonNegative("insurance.claims_processing_fee", b.Insurance.ClaimsProcessingFee)},
		{"", checkNonNegative("insurance.claims_per_1k_users", b.Insurance.ClaimsPer1kUsers)},
		{"", checkNonNegative("insurance.policy_retention_bonus", b.Insurance.PolicyRetentionBonus)},
		{"", checkFraction("parts_retail.commission_rate", b.PartsRetail.CommissionRate)},
		{"", checkNonNegative("parts_retail.orders_per_1k_users", b.PartsRetail.OrdersPer1kUsers)},
		{"", checkNonNegative("parts_retail.avg_order_value", b.PartsRetail.AvgOrderValue)},
		{"", checkFraction("parts_retail.return_rate", b.PartsRetail.ReturnRate)},
		{"", checkNonNegative("financial_services.monthly_fee_per_user", b.FinancialServices.MonthlyFeePerUser)},
		{"", checkFraction("financial_services.connection_rate", b.FinancialServices.ConnectionRate)},
		{"", checkNonNegative("financial_services.transaction_fee", b.FinancialServices.TransactionFee)},
		{"", checkNonNegative("financial_services.transactions_per_user", b.FinancialServices.TransactionsPerUser)},
		{"", checkFraction("financial_services.premium_upgrade_rate", b.FinancialServices.PremiumUpgradeRate)},
		{"", checkNonNegative("data_services.queries_per_user", b.DataServices.QueriesPerUser)},
		{"", checkNonNegative("data_services.price_per_query", b.DataServices.PricePerQuery)},
		{"", checkNonNegative("data_services.license_fee_per_partner", b.DataServices.LicenseFeePerPartner)},
	}
	for _, c := range checks {
		if c.err != nil {
			return c.err
		}
	}

	if _, err := ParseVehicleClass(string(b.Vehicle.Class)); err != nil {
		return err
	}
	if b.Vehicle.BasePrice <= 0 {
		return fmt.Errorf("vehicle.base_price: must be > 0, got %v", b.Vehicle.BasePrice)
	}
	if b.Vehicle.AnnualMileage <= 0 {
		return fmt.Errorf("vehicle.annual_mileage: must be > 0, got %d", b.Vehicle.AnnualMileage)
	}
	if b.Vehicle.OwnershipYears <= 0 {
		return fmt.Errorf("vehicle.ownership_years: must be > 0, got %d", b.Vehicle.OwnershipYears)
	}

	if err := checkNonNegative("market.fuel_price", b.Market.FuelPrice); err != nil {
		return err
	}
	if err := checkNonNegative("market.electricity_rate", b.Market.ElectricityRate); err != nil {
		return err
	}
	if b.Market.InflationRate < -1 {
		return fmt.Errorf("market.inflation_rate: must be >= -1, got %v", b.Market.InflationRate)
	}

	if b.Partnership.PartnerCount < 0 {
		return fmt.Errorf("partnership.partner_count: must be >= 0, got %d", b.Partnership.PartnerCount)
	}
	// Tier is deliberately not validated: unknown tiers resolve to the Premium
	// multiplier via TierMultiplier.
	return nil
}
