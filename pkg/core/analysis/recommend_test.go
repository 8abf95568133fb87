package analysis

import (
	"reflect"
	"testing"

	"revenue_model/pkg/core/params"
)

func TestRecommendations_DefaultFlagsChurn(t *testing.T) {
	// The default bundle is high-ROI with balanced streams; only the 3%
	// churn crosses a threshold.
	m := mustModel(t, params.Default())
	got, err := Recommendations(m)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"Reduce churn with better engagement or loyalty programs."}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("recommendations = %v, want %v", got, want)
	}
}

func TestRecommendations_Balanced(t *testing.T) {
	b := params.Default()
	b.UserGrowth.MonthlyChurnRate = 0.01
	m := mustModel(t, b)
	got, err := Recommendations(m)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"Current configuration is well balanced. Monitor market trends for new opportunities."}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("recommendations = %v, want %v", got, want)
	}
}

func TestRecommendations_EmittedInRuleOrder(t *testing.T) {
	// No users and no partners: ROI goes negative and churn stays high, so
	// the first and last rules fire, in that order.
	b := params.Default()
	b.UserGrowth.InitialUsers = 0
	b.Partnership.PartnerCount = 0
	b.Partnership.ServiceProviders = nil
	b.Partnership.InsurancePartners = nil
	b.Partnership.PartsRetailers = nil
	b.Partnership.FuelPartners = nil
	b.Partnership.FinancialServices = nil
	b.Partnership.DataProviders = nil
	b.Partnership.EnterpriseSolutions = nil
	m := mustModel(t, b)
	got, err := Recommendations(m)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{
		"Increase partner count or expand enterprise solutions for higher ROI.",
		"Reduce churn with better engagement or loyalty programs.",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("recommendations = %v, want %v", got, want)
	}
}

func TestRecommendations_StreamImbalances(t *testing.T) {
	b := params.Default()
	b.UserGrowth.MonthlyChurnRate = 0.01
	// A fourth data provider pushes data revenue past service revenue;
	// a single insurance partner drops below the parts roster.
	b.Partnership.DataProviders = append(b.Partnership.DataProviders, "Edmunds")
	b.Partnership.InsurancePartners = b.Partnership.InsurancePartners[:1]
	m := mustModel(t, b)
	got, err := Recommendations(m)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{
		"Data partnerships are outperforming service providers. Consider more data integrations.",
		"Expand insurance partnerships for more balanced revenue streams.",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("recommendations = %v, want %v", got, want)
	}
}
