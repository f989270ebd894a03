package population

import (
	"fmt"
	"io"
	"reflect"
)

// Gender is the binary gender code used by the generators.
type Gender int

const (
	Male   Gender = 0
	Female Gender = 1
)

// Education is an educational attainment label.
type Education string

const (
	EducationLow    Education = "Low"
	EducationMedium Education = "Medium"
	EducationHigh   Education = "High"
)

// Employment is an employment status label.
type Employment string

const (
	EmploymentYes       Employment = "Yes"
	EmploymentNoSeeking Employment = "No, seeking employment"
	EmploymentNoOther   Employment = "No, other"
)

// Partnership is a partnership status label.
type Partnership string

const (
	PartnershipSingle                       Partnership = "Single"
	PartnershipMarried                      Partnership = "Married"
	PartnershipLiveInPartner                Partnership = "Live-in partner"
	PartnershipInRelationshipNoCohabitation Partnership = "In relationship, no cohabitation"
	PartnershipOther                        Partnership = "Other"
)

// Features holds the demographic and health attributes of one simulated person.
//
// Binary attributes are stored as bool. A generator column value of 1 maps to
// true (see FlagFromColumn). The feature tag gives the name used by Summary,
// and field order is the summary order.
type Features struct {
	Name              string      `feature:"name"`
	Gender            Gender      `feature:"gender"`
	Age               int         `feature:"age"`
	Education         Education   `feature:"education"`
	Employed          Employment  `feature:"employed"`
	PartnershipStatus Partnership `feature:"partnership_status"`

	PreExistingDepression     bool `feature:"pre_existing_depression"`
	PreExistingBurnout        bool `feature:"pre_existing_burnout"`
	PreExistingAddiction      bool `feature:"pre_existing_addiction"`
	PreExistingChronicFatigue bool `feature:"pre_existing_chronic_fatigue"`

	Parenthood      bool `feature:"parenthood"`
	LivingWithChild bool `feature:"living_with_child"`
	SingleParent    bool `feature:"single_parent"`

	HousingDifficulties     bool `feature:"housing_difficulties"`
	FinanceDifficulties     bool `feature:"finance_difficulties"`
	PreExistingHealthIssues bool `feature:"pre_existing_health_issues"`
	PartnerDifficulties     bool `feature:"partner_difficulties"`
}

// NewFeatures returns a fully populated feature set. Every field must be
// supplied, there are no defaults.
func NewFeatures(
	name string,
	gender Gender,
	age int,
	education Education,
	employed Employment,
	partnership Partnership,
	depression, burnout, addiction, chronicFatigue bool,
	parenthood, livingWithChild, singleParent bool,
	housing, finance, healthIssues, partnerDifficulties bool,
) Features {
	return Features{
		Name:                      name,
		Gender:                    gender,
		Age:                       age,
		Education:                 education,
		Employed:                  employed,
		PartnershipStatus:         partnership,
		PreExistingDepression:     depression,
		PreExistingBurnout:        burnout,
		PreExistingAddiction:      addiction,
		PreExistingChronicFatigue: chronicFatigue,
		Parenthood:                parenthood,
		LivingWithChild:           livingWithChild,
		SingleParent:              singleParent,
		HousingDifficulties:       housing,
		FinanceDifficulties:       finance,
		PreExistingHealthIssues:   healthIssues,
		PartnerDifficulties:       partnerDifficulties,
	}
}

// FieldNames returns the feature names in declaration order.
func FieldNames() []string {
	t := reflect.TypeOf(Features{})
	names := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		names = append(names, t.Field(i).Tag.Get("feature"))
	}
	return names
}

// Summary returns one "<field_name>: <value>" line per feature, in
// declaration order.
func (f Features) Summary() []string {
	v := reflect.ValueOf(f)
	t := v.Type()
	lines := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		lines = append(lines, fmt.Sprintf("%s: %v", t.Field(i).Tag.Get("feature"), v.Field(i).Interface()))
	}
	return lines
}

// WriteSummary prints Summary to w, one line per feature.
func (f Features) WriteSummary(w io.Writer) error {
	return writeLines(w, f.Summary())
}

// Agent is a simulated individual: a feature set plus its contact count.
// NContacts is meant to hold the social-graph degree once a network exists.
type Agent struct {
	Features  Features
	NContacts int
}

// NewAgent wraps f with a zero contact count.
func NewAgent(f Features) Agent {
	return Agent{Features: f}
}

// Summary returns the feature summary followed by the contact count.
func (a Agent) Summary() []string {
	return append(a.Features.Summary(), fmt.Sprintf("n_contacts: %d", a.NContacts))
}

// WriteSummary prints Summary to w, one line per field.
func (a Agent) WriteSummary(w io.Writer) error {
	return writeLines(w, a.Summary())
}

// FlagFromColumn converts a generator column value to a boolean flag.
func FlagFromColumn(v int) bool {
	return v == 1
}

func writeLines(w io.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
