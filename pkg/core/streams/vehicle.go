package streams

import (
	"revenue_model/pkg/core/growth"
	"revenue_model/pkg/core/params"
)

// Stream names of the vehicle (aggregate annual) catalog.
const (
	StreamVehicleService    = "service_providers"
	StreamVehicleInsurance  = "insurance_partners"
	StreamVehicleParts      = "parts_retailers"
	StreamVehicleFuel       = "fuel_partners"
	StreamVehicleFinancial  = "financial_services"
	StreamVehicleData       = "data_providers"
	StreamVehicleEnterprise = "enterprise_solutions"
	StreamPartnershipFees   = "partnership_fees"
	StreamUserSaaS          = "user_saas"
)

// Per-partner monthly rates of the vehicle catalog. These are the model's
// fixed business assumptions, not tunables.
const (
	serviceRatePerPartner    = 200
	insuranceRatePerPartner  = 150
	partsRatePerPartner      = 100
	fuelRatePerPartner       = 120
	financialRatePerPartner  = 180
	dataRatePerPartner       = 250
	enterpriseRatePerPartner = 1000
	basePartnershipFee       = 1000
	saasFeePerEngagedUser    = 5
)

// perPartnerStream builds the common shape of the roster-driven streams:
// rate × roster size × tier multiplier × mean engaged users over the horizon.
func perPartnerStream(rate float64, roster func(p params.Partnership) []string) AggregateFunc {
	return func(traj []growth.PopulationSnapshot, b *params.Bundle) float64 {
		n := float64(len(roster(b.Partnership)))
		return rate * n * b.Partnership.TierMultiplier() * growth.MeanEngaged(traj)
	}
}

// VehicleCatalog builds the aggregate registry of the TCO variant. Streams
// scale off the mean (and for SaaS, the sum) of the engagement-scaled user
// trajectory, so the engagement rate scales every population-driven figure
// linearly; enterprise and base fees scale off partner count alone,
// independent of population.
func VehicleCatalog() *AggregateRegistry {
	r := NewAggregateRegistry()
	_ = r.Register(StreamVehicleService, perPartnerStream(serviceRatePerPartner,
		func(p params.Partnership) []string { return p.ServiceProviders }))
	_ = r.Register(StreamVehicleInsurance, perPartnerStream(insuranceRatePerPartner,
		func(p params.Partnership) []string { return p.InsurancePartners }))
	_ = r.Register(StreamVehicleParts, perPartnerStream(partsRatePerPartner,
		func(p params.Partnership) []string { return p.PartsRetailers }))
	_ = r.Register(StreamVehicleFuel, perPartnerStream(fuelRatePerPartner,
		func(p params.Partnership) []string { return p.FuelPartners }))
	_ = r.Register(StreamVehicleFinancial, perPartnerStream(financialRatePerPartner,
		func(p params.Partnership) []string { return p.FinancialServices }))
	_ = r.Register(StreamVehicleData, perPartnerStream(dataRatePerPartner,
		func(p params.Partnership) []string { return p.DataProviders }))
	_ = r.Register(StreamVehicleEnterprise, func(traj []growth.PopulationSnapshot, b *params.Bundle) float64 {
		n := float64(len(b.Partnership.EnterpriseSolutions))
		return enterpriseRatePerPartner * n * b.Partnership.TierMultiplier() * float64(b.Partnership.PartnerCount)
	})
	_ = r.Register(StreamPartnershipFees, func(traj []growth.PopulationSnapshot, b *params.Bundle) float64 {
		return basePartnershipFee * b.Partnership.TierMultiplier() * float64(b.Partnership.PartnerCount)
	})
	_ = r.Register(StreamUserSaaS, func(traj []growth.PopulationSnapshot, b *params.Bundle) float64 {
		return saasFeePerEngagedUser * growth.SumEngaged(traj)
	})
	return r
}
