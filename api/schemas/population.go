package schemas

import (
	"fmt"
	"io"

	json "github.com/json-iterator/go"

	"github.com/xkilldash9x/smallworld/internal/population"
)

// -- Population Schemas --

// AgentRecord is the wire form of a population.Agent. Field names match the
// feature names used by the summaries.
type AgentRecord struct {
	Name                      string `json:"name"`
	Gender                    int    `json:"gender"`
	Age                       int    `json:"age"`
	Education                 string `json:"education"`
	Employed                  string `json:"employed"`
	PartnershipStatus         string `json:"partnership_status"`
	PreExistingDepression     bool   `json:"pre_existing_depression"`
	PreExistingBurnout        bool   `json:"pre_existing_burnout"`
	PreExistingAddiction      bool   `json:"pre_existing_addiction"`
	PreExistingChronicFatigue bool   `json:"pre_existing_chronic_fatigue"`
	Parenthood                bool   `json:"parenthood"`
	LivingWithChild           bool   `json:"living_with_child"`
	SingleParent              bool   `json:"single_parent"`
	HousingDifficulties       bool   `json:"housing_difficulties"`
	FinanceDifficulties       bool   `json:"finance_difficulties"`
	PreExistingHealthIssues   bool   `json:"pre_existing_health_issues"`
	PartnerDifficulties       bool   `json:"partner_difficulties"`
	NContacts                 int    `json:"n_contacts"`
}

// NewAgentRecord converts an agent to its wire form.
func NewAgentRecord(a population.Agent) AgentRecord {
	f := a.Features
	return AgentRecord{
		Name:                      f.Name,
		Gender:                    int(f.Gender),
		Age:                       f.Age,
		Education:                 string(f.Education),
		Employed:                  string(f.Employed),
		PartnershipStatus:         string(f.PartnershipStatus),
		PreExistingDepression:     f.PreExistingDepression,
		PreExistingBurnout:        f.PreExistingBurnout,
		PreExistingAddiction:      f.PreExistingAddiction,
		PreExistingChronicFatigue: f.PreExistingChronicFatigue,
		Parenthood:                f.Parenthood,
		LivingWithChild:           f.LivingWithChild,
		SingleParent:              f.SingleParent,
		HousingDifficulties:       f.HousingDifficulties,
		FinanceDifficulties:       f.FinanceDifficulties,
		PreExistingHealthIssues:   f.PreExistingHealthIssues,
		PartnerDifficulties:       f.PartnerDifficulties,
		NContacts:                 a.NContacts,
	}
}

// NewAgentRecords converts a whole population, preserving order.
func NewAgentRecords(agents []population.Agent) []AgentRecord {
	records := make([]AgentRecord, len(agents))
	for i, a := range agents {
		records[i] = NewAgentRecord(a)
	}
	return records
}

// EncodeJSONLines writes one JSON object per record, each followed by a newline.
func EncodeJSONLines(w io.Writer, records []AgentRecord) error {
	stream := json.ConfigCompatibleWithStandardLibrary.BorrowStream(w)
	defer json.ConfigCompatibleWithStandardLibrary.ReturnStream(stream)

	for i := range records {
		stream.WriteVal(records[i])
		stream.WriteRaw("\n")
		if stream.Error != nil {
			return fmt.Errorf("failed to encode record %d: %w", i, stream.Error)
		}
		if err := stream.Flush(); err != nil {
			return fmt.Errorf("failed to write record %d: %w", i, err)
		}
	}
	return nil
}
