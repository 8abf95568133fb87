package params

import "fmt"

// fields maps dotted sweep paths to the bundle's numeric fields. The paths
// match the struct's json/yaml tags so a sweep request can name any slider the
// dashboard exposes.
func (b *Bundle) fields() map[string]*float64 {
	return map[string]*float64{
		"user_growth.monthly_growth_rate": &b.UserGrowth.MonthlyGrowthRate,
		"user_growth.monthly_churn_rate":  &b.UserGrowth.MonthlyChurnRate,
		"user_growth.engagement_rate":     &b.UserGrowth.EngagementRate,

		"service_providers.avg_commission_rate":   &b.ServiceProviders.AvgCommissionRate,
		"service_providers.bookings_per_1k_users": &b.ServiceProviders.BookingsPer1kUsers,
		"service_providers.avg_service_value":     &b.ServiceProviders.AvgServiceValue,

		"insurance.referral_commission":    &b.Insurance.ReferralCommission,
		"insurance.conversion_rate":        &b.Insurance.ConversionRate,
		"insurance.claims_processing_fee":  &b.Insurance.ClaimsProcessingFee,
		"insurance.claims_per_1k_users":    &b.Insurance.ClaimsPer1kUsers,
		"insurance.policy_retention_bonus": &b.Insurance.PolicyRetentionBonus,

		"parts_retail.commission_rate":     &b.PartsRetail.CommissionRate,
		"parts_retail.orders_per_1k_users": &b.PartsRetail.OrdersPer1kUsers,
		"parts_retail.avg_order_value":     &b.PartsRetail.AvgOrderValue,
		"parts_retail.return_rate":         &b.PartsRetail.ReturnRate,

		"financial_services.monthly_fee_per_user":  &b.FinancialServices.MonthlyFeePerUser,
		"financial_services.connection_rate":       &b.FinancialServices.ConnectionRate,
		"financial_services.transaction_fee":       &b.FinancialServices.TransactionFee,
		"financial_services.transactions_per_user": &b.FinancialServices.TransactionsPerUser,
		"financial_services.premium_upgrade_rate":  &b.FinancialServices.PremiumUpgradeRate,

		"data_services.queries_per_user":        &b.DataServices.QueriesPerUser,
		"data_services.price_per_query":         &b.DataServices.PricePerQuery,
		"data_services.license_fee_per_partner": &b.DataServices.LicenseFeePerPartner,

		"vehicle.base_price":      &b.Vehicle.BasePrice,
		"market.fuel_price":       &b.Market.FuelPrice,
		"market.electricity_rate": &b.Market.ElectricityRate,
		"market.inflation_rate":   &b.Market.InflationRate,
	}
}

// Set overrides a single numeric field addressed by its dotted path.
// Integer-valued fields are truncated toward zero.
func (b *Bundle) Set(path string, v float64) error {
	switch path {
	case "user_growth.initial_users":
		b.UserGrowth.InitialUsers = int(v)
		return nil
	case "partnership.partner_count":
		b.Partnership.PartnerCount = int(v)
		return nil
	case "vehicle.annual_mileage":
		b.Vehicle.AnnualMileage = int(v)
		return nil
	case "vehicle.ownership_years":
		b.Vehicle.OwnershipYears = int(v)
		return nil
	}
	if p, ok := b.fields()[path]; ok {
		*p = v
		return nil
	}
	return fmt.Errorf("unknown parameter path %q", path)
}

// Get reads a single numeric field addressed by its dotted path.
func (b *Bundle) Get(path string) (float64, error) {
	switch path {
	case "user_growth.initial_users":
		return float64(b.UserGrowth.InitialUsers), nil
	case "partnership.partner_count":
		return float64(b.Partnership.PartnerCount), nil
	case "vehicle.annual_mileage":
		return float64(b.Vehicle.AnnualMileage), nil
	case "vehicle.ownership_years":
		return float64(b.Vehicle.OwnershipYears), nil
	}
	if p, ok := b.fields()[path]; ok {
		return *p, nil
	}
	return 0, fmt.Errorf("unknown parameter path %q", path)
}
