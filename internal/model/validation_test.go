package model

import (
	"strings"
	"testing"
	"time"
)

// ============================================================================
// SubmitRSVPRequest Tests
// ============================================================================

func TestSubmitRSVPRequest_Validate_Valid(t *testing.T) {
	t.Parallel()

	req := &SubmitRSVPRequest{
		Name:      "Juan García",
		Email:     "juan@example.com",
		Attendees: 2,
	}

	errors := req.Validate()
	if len(errors) > 0 {
		t.Errorf("expected no errors, got %v", errors)
	}
}

func TestSubmitRSVPRequest_Validate_MissingName(t *testing.T) {
	t.Parallel()

	req := &SubmitRSVPRequest{
		Email:     "juan@example.com",
		Attendees: 1,
	}

	errors := req.Validate()
	if len(errors) != 1 || errors[0].Field != "name" {
		t.Errorf("expected name error, got %v", errors)
	}
}

func TestSubmitRSVPRequest_Validate_WhitespaceName(t *testing.T) {
	t.Parallel()

	req := &SubmitRSVPRequest{
		Name:      "   ",
		Email:     "juan@example.com",
		Attendees: 1,
	}

	errors := req.Validate()
	if len(errors) != 1 || errors[0].Field != "name" {
		t.Errorf("expected name error, got %v", errors)
	}
}

func TestSubmitRSVPRequest_Validate_InvalidEmail(t *testing.T) {
	t.Parallel()

	req := &SubmitRSVPRequest{
		Name:      "Juan García",
		Email:     "not-an-email",
		Attendees: 1,
	}

	errors := req.Validate()
	if len(errors) != 1 || errors[0].Field != "email" {
		t.Errorf("expected email error, got %v", errors)
	}
}

func TestSubmitRSVPRequest_Validate_AttendeesBounds(t *testing.T) {
	t.Parallel()

	for _, attendees := range []int{0, -1, MaxRSVPAttendees + 1} {
		req := &SubmitRSVPRequest{
			Name:      "Juan García",
			Email:     "juan@example.com",
			Attendees: attendees,
		}

		errors := req.Validate()
		if len(errors) != 1 || errors[0].Field != "attendees" {
			t.Errorf("attendees=%d: expected attendees error, got %v", attendees, errors)
		}
	}
}

func TestSubmitRSVPRequest_Validate_MessageTooLong(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("a", MaxRSVPMessageLength+1)
	req := &SubmitRSVPRequest{
		Name:      "Juan García",
		Email:     "juan@example.com",
		Attendees: 1,
		Message:   &long,
	}

	errors := req.Validate()
	if len(errors) != 1 || errors[0].Field != "message" {
		t.Errorf("expected message error, got %v", errors)
	}
}

// ============================================================================
// CreateMatchRequest Tests
// ============================================================================

func TestCreateMatchRequest_Validate_Valid(t *testing.T) {
	t.Parallel()

	req := &CreateMatchRequest{
		Opponent:    "Sevilla FC",
		Competition: CompetitionLaLiga,
		KickoffAt:   "2026-09-13T16:15:00Z",
		HomeAway:    "home",
		Venue:       "Benito Villamarín",
	}

	errors := req.Validate()
	if len(errors) > 0 {
		t.Errorf("expected no errors, got %v", errors)
	}
}

func TestCreateMatchRequest_Validate_InvalidCompetition(t *testing.T) {
	t.Parallel()

	req := &CreateMatchRequest{
		Opponent:    "Sevilla FC",
		Competition: "champions",
		KickoffAt:   "2026-09-13T16:15:00Z",
		HomeAway:    "home",
		Venue:       "Benito Villamarín",
	}

	errors := req.Validate()
	hasError := false
	for _, e := range errors {
		if e.Field == "competition" {
			hasError = true
		}
	}
	if !hasError {
		t.Errorf("expected competition error, got %v", errors)
	}
}

func TestCreateMatchRequest_Validate_BadKickoff(t *testing.T) {
	t.Parallel()

	req := &CreateMatchRequest{
		Opponent:    "Sevilla FC",
		Competition: CompetitionLaLiga,
		KickoffAt:   "next saturday",
		HomeAway:    "home",
		Venue:       "Benito Villamarín",
	}

	errors := req.Validate()
	hasError := false
	for _, e := range errors {
		if e.Field == "kickoff_at" {
			hasError = true
		}
	}
	if !hasError {
		t.Errorf("expected kickoff_at error, got %v", errors)
	}
}

func TestCreateMatchRequest_Validate_BadStreamURL(t *testing.T) {
	t.Parallel()

	bad := "ftp://stream.example.com"
	req := &CreateMatchRequest{
		Opponent:    "Sevilla FC",
		Competition: CompetitionLaLiga,
		KickoffAt:   "2026-09-13T16:15:00Z",
		HomeAway:    "home",
		Venue:       "Benito Villamarín",
		StreamURL:   &bad,
	}

	errors := req.Validate()
	hasError := false
	for _, e := range errors {
		if e.Field == "stream_url" {
			hasError = true
		}
	}
	if !hasError {
		t.Errorf("expected stream_url error, got %v", errors)
	}
}

// ============================================================================
// CreateContactRequest Tests
// ============================================================================

func TestCreateContactRequest_Validate_Valid(t *testing.T) {
	t.Parallel()

	req := &CreateContactRequest{
		Name:    "Morag MacLeod",
		Email:   "morag@example.com",
		Type:    ContactTypeGeneral,
		Subject: "Membership",
		Message: "How do I join the peña?",
	}

	errors := req.Validate()
	if len(errors) > 0 {
		t.Errorf("expected no errors, got %v", errors)
	}
}

func TestCreateContactRequest_Validate_InvalidType(t *testing.T) {
	t.Parallel()

	req := &CreateContactRequest{
		Name:    "Morag MacLeod",
		Email:   "morag@example.com",
		Type:    "complaint",
		Subject: "Membership",
		Message: "How do I join the peña?",
	}

	errors := req.Validate()
	hasError := false
	for _, e := range errors {
		if e.Field == "type" {
			hasError = true
		}
	}
	if !hasError {
		t.Errorf("expected type error, got %v", errors)
	}
}

// ============================================================================
// Voting Request Tests
// ============================================================================

func TestCastVoteRequest_Validate_Valid(t *testing.T) {
	t.Parallel()

	email := "juan@example.com"
	req := &CastVoteRequest{DesignID: "design_1", Email: &email}

	errors := req.Validate()
	if len(errors) > 0 {
		t.Errorf("expected no errors, got %v", errors)
	}
}

func TestCastVoteRequest_Validate_MissingDesign(t *testing.T) {
	t.Parallel()

	req := &CastVoteRequest{}

	errors := req.Validate()
	if len(errors) != 1 || errors[0].Field != "designId" {
		t.Errorf("expected designId error, got %v", errors)
	}
}

func TestCreatePreOrderRequest_Validate_Valid(t *testing.T) {
	t.Parallel()

	req := &CreatePreOrderRequest{
		DesignID: "design_1",
		Name:     "Juan García",
		Email:    "juan@example.com",
		Size:     "L",
		Quantity: 2,
	}

	errors := req.Validate()
	if len(errors) > 0 {
		t.Errorf("expected no errors, got %v", errors)
	}
}

func TestCreatePreOrderRequest_Validate_BadSize(t *testing.T) {
	t.Parallel()

	req := &CreatePreOrderRequest{
		DesignID: "design_1",
		Name:     "Juan García",
		Email:    "juan@example.com",
		Size:     "XS",
		Quantity: 1,
	}

	errors := req.Validate()
	hasError := false
	for _, e := range errors {
		if e.Field == "size" {
			hasError = true
		}
	}
	if !hasError {
		t.Errorf("expected size error, got %v", errors)
	}
}

func TestCreatePreOrderRequest_Validate_QuantityBounds(t *testing.T) {
	t.Parallel()

	for _, qty := range []int{0, MaxPreOrderQuantity + 1} {
		req := &CreatePreOrderRequest{
			DesignID: "design_1",
			Name:     "Juan García",
			Email:    "juan@example.com",
			Size:     "M",
			Quantity: qty,
		}

		errors := req.Validate()
		hasError := false
		for _, e := range errors {
			if e.Field == "quantity" {
				hasError = true
			}
		}
		if !hasError {
			t.Errorf("quantity=%d: expected quantity error, got %v", qty, errors)
		}
	}
}

// ============================================================================
// Merchandise Request Tests
// ============================================================================

func TestCreateOrderRequest_Validate_Valid(t *testing.T) {
	t.Parallel()

	size := "M"
	req := &CreateOrderRequest{
		Name:  "Juan García",
		Email: "juan@example.com",
		Items: []OrderItem{
			{ProductID: "product_1", Size: &size, Quantity: 1},
			{ProductID: "product_2", Quantity: 3},
		},
	}

	errors := req.Validate()
	if len(errors) > 0 {
		t.Errorf("expected no errors, got %v", errors)
	}
}

func TestCreateOrderRequest_Validate_NoItems(t *testing.T) {
	t.Parallel()

	req := &CreateOrderRequest{
		Name:  "Juan García",
		Email: "juan@example.com",
	}

	errors := req.Validate()
	if len(errors) != 1 || errors[0].Field != "items" {
		t.Errorf("expected items error, got %v", errors)
	}
}

func TestCreateOrderRequest_Validate_ItemMissingProduct(t *testing.T) {
	t.Parallel()

	req := &CreateOrderRequest{
		Name:  "Juan García",
		Email: "juan@example.com",
		Items: []OrderItem{{Quantity: 1}},
	}

	errors := req.Validate()
	hasError := false
	for _, e := range errors {
		if e.Field == "items" && strings.Contains(e.Message, "productId") {
			hasError = true
		}
	}
	if !hasError {
		t.Errorf("expected items productId error, got %v", errors)
	}
}

func TestCreateProductRequest_Validate_BadCurrency(t *testing.T) {
	t.Parallel()

	req := &CreateProductRequest{
		Name:       "Bufanda verdiblanca",
		PriceCents: 1500,
		Currency:   "USD",
	}

	errors := req.Validate()
	hasError := false
	for _, e := range errors {
		if e.Field == "currency" {
			hasError = true
		}
	}
	if !hasError {
		t.Errorf("expected currency error, got %v", errors)
	}
}

func TestCreateProductRequest_Validate_NonPositivePrice(t *testing.T) {
	t.Parallel()

	req := &CreateProductRequest{
		Name:       "Bufanda verdiblanca",
		PriceCents: 0,
		Currency:   "GBP",
	}

	errors := req.Validate()
	hasError := false
	for _, e := range errors {
		if e.Field == "priceCents" {
			hasError = true
		}
	}
	if !hasError {
		t.Errorf("expected priceCents error, got %v", errors)
	}
}

// ============================================================================
// Trivia Request Tests
// ============================================================================

func TestSubmitScoreRequest_Validate_Valid(t *testing.T) {
	t.Parallel()

	req := &SubmitScoreRequest{Score: 7, Total: 10, DurationS: 95}

	errors := req.Validate()
	if len(errors) > 0 {
		t.Errorf("expected no errors, got %v", errors)
	}
}

func TestSubmitScoreRequest_Validate_ScoreAboveTotal(t *testing.T) {
	t.Parallel()

	req := &SubmitScoreRequest{Score: 11, Total: 10}

	errors := req.Validate()
	hasError := false
	for _, e := range errors {
		if e.Field == "score" {
			hasError = true
		}
	}
	if !hasError {
		t.Errorf("expected score error, got %v", errors)
	}
}

func TestCreateQuestionRequest_Validate_Valid(t *testing.T) {
	t.Parallel()

	req := &CreateQuestionRequest{
		Category:     TriviaCategoryBetis,
		Question:     "In which year was Real Betis founded?",
		Answers:      []string{"1907", "1912", "1899"},
		CorrectIndex: 0,
	}

	errors := req.Validate()
	if len(errors) > 0 {
		t.Errorf("expected no errors, got %v", errors)
	}
}

func TestCreateQuestionRequest_Validate_CorrectIndexOutOfRange(t *testing.T) {
	t.Parallel()

	req := &CreateQuestionRequest{
		Category:     TriviaCategoryWhisky,
		Question:     "Which region produces Laphroaig?",
		Answers:      []string{"Islay", "Speyside"},
		CorrectIndex: 2,
	}

	errors := req.Validate()
	hasError := false
	for _, e := range errors {
		if e.Field == "correct_index" {
			hasError = true
		}
	}
	if !hasError {
		t.Errorf("expected correct_index error, got %v", errors)
	}
}

// ============================================================================
// News Request Tests
// ============================================================================

func TestCreateNewsRequest_Validate_Valid(t *testing.T) {
	t.Parallel()

	src := "https://www.estadiodeportivo.com/article"
	req := &CreateNewsRequest{
		Title:       "Betis closing in on winger",
		Body:        "Medical scheduled for Monday.",
		Category:    NewsCategoryFichaje,
		Reliability: 4,
		SourceURL:   &src,
	}

	errors := req.Validate()
	if len(errors) > 0 {
		t.Errorf("expected no errors, got %v", errors)
	}
}

func TestCreateNewsRequest_Validate_ReliabilityBounds(t *testing.T) {
	t.Parallel()

	for _, rel := range []int{0, 6} {
		req := &CreateNewsRequest{
			Title:       "Betis closing in on winger",
			Body:        "Medical scheduled for Monday.",
			Category:    NewsCategoryRumor,
			Reliability: rel,
		}

		errors := req.Validate()
		hasError := false
		for _, e := range errors {
			if e.Field == "reliability" {
				hasError = true
			}
		}
		if !hasError {
			t.Errorf("reliability=%d: expected reliability error, got %v", rel, errors)
		}
	}
}

// ============================================================================
// Entity Helper Tests
// ============================================================================

func TestMatch_IsUpcoming(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	future := &Match{KickoffAt: now.Add(48 * time.Hour)}
	if !future.IsUpcoming(now) {
		t.Error("expected future match to be upcoming")
	}

	past := &Match{KickoffAt: now.Add(-2 * time.Hour)}
	if past.IsUpcoming(now) {
		t.Error("expected past match not to be upcoming")
	}
}

func TestTriviaQuestion_Public_StripsAnswerKey(t *testing.T) {
	t.Parallel()

	q := &TriviaQuestion{
		ID:           "question_1",
		Category:     TriviaCategoryScotland,
		Question:     "What is the capital of Scotland?",
		Answers:      []string{"Glasgow", "Edinburgh"},
		CorrectIndex: 1,
	}

	pub := q.Public()
	if pub.ID != q.ID || pub.Question != q.Question {
		t.Errorf("public view lost fields: %+v", pub)
	}
	if len(pub.Answers) != 2 {
		t.Errorf("expected answers preserved, got %v", pub.Answers)
	}
}

func TestValidEmail(t *testing.T) {
	t.Parallel()

	valid := []string{"a@b.co", "juan.garcia@pbescocia.com", "x+tag@example.org"}
	for _, e := range valid {
		if !ValidEmail(e) {
			t.Errorf("expected %q to be valid", e)
		}
	}

	invalid := []string{"", "no-at-sign", "@missing.local", "trailing@", "spaces in@example.com"}
	for _, e := range invalid {
		if ValidEmail(e) {
			t.Errorf("expected %q to be invalid", e)
		}
	}
}
