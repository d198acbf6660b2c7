package services

import "strings"

const (
	ScorePerfect  = 100
	ScoreCitation = -50
)

const (
	MessagePerfect     = "Perfect labeling."
	citationPrefix     = "Citation Issued: "
	citationContainer  = "Wrong container type."
	citationPictograms = "Incorrect hazard symbols."
)

type VerifyResult struct {
	Correct           bool     `json:"correct"`
	ScoreDelta        int      `json:"scoreDelta"`
	Message           string   `json:"message"`
	CorrectContainer  string   `json:"correctContainer"`
	CorrectPictograms []string `json:"correctPictograms"`
}

// VerificationService recomputes correctness from the stored product.
// Client-held session state is never trusted.
type VerificationService struct {
	store ProductStore
}

func NewVerificationService(store ProductStore) *VerificationService {
	return &VerificationService{store: store}
}

func (s *VerificationService) Verify(productID uint, selectedContainer string, selectedPictograms []string) (*VerifyResult, error) {
	product, err := s.store.GetByID(productID)
	if err != nil {
		return nil, err
	}

	containerCorrect := selectedContainer == product.CorrectContainer
	pictogramsCorrect := sameSet(selectedPictograms, product.CorrectPictograms)
	correct := containerCorrect && pictogramsCorrect

	result := &VerifyResult{
		Correct:           correct,
		CorrectContainer:  product.CorrectContainer,
		CorrectPictograms: product.CorrectPictograms,
	}

	if correct {
		result.ScoreDelta = ScorePerfect
		result.Message = MessagePerfect
		return result, nil
	}

	citations := make([]string, 0, 2)
	if !containerCorrect {
		citations = append(citations, citationContainer)
	}
	if !pictogramsCorrect {
		citations = append(citations, citationPictograms)
	}

	result.ScoreDelta = ScoreCitation
	result.Message = citationPrefix + strings.Join(citations, " ")
	return result, nil
}

// sameSet compares order-independently; duplicates collapse, extra or
// missing entries both fail.
func sameSet(a, b []string) bool {
	as := make(map[string]struct{}, len(a))
	for _, v := range a {
		as[v] = struct{}{}
	}
	bs := make(map[string]struct{}, len(b))
	for _, v := range b {
		bs[v] = struct{}{}
	}
	if len(as) != len(bs) {
		return false
	}
	for v := range as {
		if _, ok := bs[v]; !ok {
			return false
		}
	}
	return true
}
