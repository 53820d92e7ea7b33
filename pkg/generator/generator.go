package generator

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/charmbracelet/log"

	"github.com/swaslabs/ledgen/pkg/catalog"
	"github.com/swaslabs/ledgen/pkg/config"
	"github.com/swaslabs/ledgen/pkg/models"
)

const (
	dateLayout      = "2006-01-02"
	timestampLayout = "2006-01-02 15:04:05"

	// The window always spans the 90 days up to the configured end date.
	windowDays = 90
)

var (
	priorities   = []string{"Normal", "Rush"}
	locations    = []string{"Hub", "Branch"}
	paymentModes = []string{"Cash", "GCash", "Bank", "Other"}
)

// Generator produces one self-consistent set of fixture collections. All
// randomness flows through a single source shared with the faker, so a fixed
// seed reproduces the run byte for byte.
//
// Draw order per event is a compatibility contract: branch, unavailability
// gate, customer, line-item count, per-item service/quantity/promo/detail
// draws, payment status, partial fraction, payment mode, date-in offset,
// received-by name. Reordering any draw changes every output after it.
type Generator struct {
	logger *log.Logger
	rng    *rand.Rand
	faker  *gofakeit.Faker
	cat    *catalog.Catalog

	count     int
	startDate time.Time
	endDate   time.Time

	trxSeq  map[string]int
	paySeq  map[string]int
	custSeq map[int]int

	customers      []*models.Customer
	lineItems      []models.LineItem
	transactions   []models.Transaction
	payments       []models.Payment
	promos         []models.Promo
	unavailability []models.Unavailability
}

// New builds a generator from the config and catalog. An invalid end date is
// rejected here, before anything is written.
func New(cfg *config.Config, cat *catalog.Catalog, logger *log.Logger) (*Generator, error) {
	endDate, err := time.ParseInLocation(dateLayout, cfg.EndDate, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("invalid end date %q, use YYYY-MM-DD: %w", cfg.EndDate, err)
	}
	if err := cat.Validate(); err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if !cfg.Seeded() {
		seed = time.Now().UnixNano()
	}
	src := rand.NewSource(seed).(rand.Source64)

	return &Generator{
		logger: logger,
		rng:    rand.New(src),
		// The faker draws from the same source as every other pick.
		faker:          gofakeit.NewCustom(src),
		cat:            cat,
		count:          cfg.Count,
		startDate:      endDate.AddDate(0, 0, -windowDays),
		endDate:        endDate,
		trxSeq:         make(map[string]int),
		paySeq:         make(map[string]int),
		custSeq:        make(map[int]int),
		customers:      []*models.Customer{},
		lineItems:      []models.LineItem{},
		transactions:   []models.Transaction{},
		payments:       []models.Payment{},
		promos:         []models.Promo{},
		unavailability: []models.Unavailability{},
	}, nil
}

// Generate runs one full pass: calendars first, then the configured number of
// transaction attempts. Attempts landing on closed branch days produce
// nothing, so the count is an upper bound on actual transactions.
func (g *Generator) Generate() {
	g.buildCalendars()

	for i := 0; i < g.count; i++ {
		offset := g.rng.Intn(windowDays + 1)
		seconds := g.rng.Intn(86400)
		ts := g.startDate.AddDate(0, 0, offset).Add(time.Duration(seconds) * time.Second)
		g.generateOne(ts)
	}

	g.logger.Info("generation finished",
		"attempts", g.count,
		"transactions", len(g.transactions),
		"customers", len(g.customers),
		"payments", len(g.payments))
}

// generateOne synthesizes a single transaction attempt at the given event
// timestamp.
func (g *Generator) generateOne(now time.Time) {
	branch := g.cat.Branches[g.rng.Intn(len(g.cat.Branches))]
	dateStr := now.Format(dateLayout)

	fullDay, partialDay := g.closedOn(branch.ID, dateStr)
	if fullDay {
		return
	}
	if partialDay && g.rng.Float64() < 0.6 {
		return
	}

	cust := g.pickCustomer(branch.Number)
	trxID := g.nextTransactionID(branch.Code, now)

	promoCount := g.promosOn(branch.ID, dateStr)
	boost := 1.0
	if promoCount > 0 {
		boost = 1.3 + 0.2*float64(promoCount-1)
	}

	numItems := g.randInt(1, 3)
	if g.rng.Float64() < 0.25*boost {
		numItems++
	}

	lineIDs := make([]string, 0, numItems)
	pairs := 0
	total := 0.0
	for idx := 0; idx < numItems; idx++ {
		lineID := LineItemID(trxID, idx)
		lineIDs = append(lineIDs, lineID)

		svc := g.cat.Services[g.rng.Intn(len(g.cat.Services))]
		qty := g.randInt(1, 5)
		if promoCount > 0 && g.rng.Float64() < 0.3 {
			qty = int(float64(qty) * boost)
			if qty > 8 {
				qty = 8
			}
		}

		g.lineItems = append(g.lineItems, models.LineItem{
			LineItemID:      lineID,
			TransactionID:   trxID,
			Priority:        g.choice(priorities),
			CustID:          cust.CustID,
			Services:        []models.LineItemService{{ServiceID: svc.ID, Quantity: qty}},
			BranchID:        branch.ID,
			Shoes:           g.faker.Word(),
			CurrentLocation: g.choice(locations),
			CurrentStatus:   "Queued",
			LatestUpdate:    now.Format(timestampLayout),
		})

		pairs += qty
		total += round2(svc.Price * float64(qty))
	}
	total = round2(total * boost)

	status := g.weighted(
		[]string{models.StatusPaid, models.StatusPartial, models.StatusNotPaid},
		[]float64{0.6, 0.2, 0.2})

	var amountPaid float64
	switch status {
	case models.StatusPaid:
		amountPaid = total
	case models.StatusPartial:
		amountPaid = round2(total * (0.2 + 0.6*g.rng.Float64()))
	}

	var paymentMode *string
	paymentIDs := []string{}
	if amountPaid > 0 {
		mode := g.choice(paymentModes)
		paymentMode = &mode

		payID := g.nextPaymentID(branch.Code)
		paymentIDs = append(paymentIDs, payID)
		g.payments = append(g.payments, models.Payment{
			PaymentID:     payID,
			TransactionID: trxID,
			PaymentAmount: amountPaid,
			PaymentMode:   mode,
			PaymentDate:   now.Format(timestampLayout),
		})
	}

	dateIn := now.AddDate(0, 0, -g.randInt(0, 30)).Format(timestampLayout)
	var dateOut *string
	if status == models.StatusPaid {
		s := now.Format(timestampLayout)
		dateOut = &s
	}

	g.transactions = append(g.transactions, models.Transaction{
		TransactionID: trxID,
		LineItemID:    lineIDs,
		BranchID:      branch.ID,
		DateIn:        dateIn,
		ReceivedBy:    g.faker.Name(),
		DateOut:       dateOut,
		CustID:        cust.CustID,
		NoPairs:       pairs,
		TotalAmount:   total,
		AmountPaid:    amountPaid,
		PaymentStatus: status,
		Payments:      paymentIDs,
		PaymentMode:   paymentMode,
	})

	cust.TotalServices += pairs
	cust.TotalExpenditure = round2(cust.TotalExpenditure + total)
}

// pickCustomer reuses a random existing customer 70% of the time, across all
// branches; otherwise it creates a fresh one scoped to the branch.
func (g *Generator) pickCustomer(branchNumber int) *models.Customer {
	if len(g.customers) > 0 && g.rng.Float64() < 0.7 {
		return g.customers[g.rng.Intn(len(g.customers))]
	}

	bdate := g.faker.DateRange(g.endDate.AddDate(-80, 0, 0), g.endDate.AddDate(-18, 0, 0)).Format(dateLayout)
	address := g.faker.Address().Address
	email := g.faker.Email()
	contact := g.faker.Phone()

	c := &models.Customer{
		CustID:      g.nextCustomerID(branchNumber),
		CustName:    g.faker.Name(),
		CustBdate:   &bdate,
		CustAddress: &address,
		CustEmail:   &email,
		CustContact: &contact,
	}
	g.customers = append(g.customers, c)
	return c
}

// closedOn reports whether the branch has full-day or partial-day
// unavailability on the given date.
func (g *Generator) closedOn(branchID, date string) (fullDay, partialDay bool) {
	for _, u := range g.unavailability {
		if u.BranchID != branchID || u.DateUnavailable != date {
			continue
		}
		switch u.Type {
		case models.FullDay:
			fullDay = true
		case models.PartialDay:
			partialDay = true
		}
	}
	return fullDay, partialDay
}

// promosOn counts the promotions covering the branch on the given date.
func (g *Generator) promosOn(branchID, date string) int {
	n := 0
	for _, p := range g.promos {
		if p.BranchID != branchID {
			continue
		}
		for _, d := range p.PromoDates {
			if d == date {
				n++
				break
			}
		}
	}
	return n
}

// Dataset snapshots the generated collections for writing or checking.
func (g *Generator) Dataset() *models.Dataset {
	customers := make([]models.Customer, len(g.customers))
	for i, c := range g.customers {
		customers[i] = *c
	}
	return &models.Dataset{
		Customers:      customers,
		LineItems:      g.lineItems,
		Transactions:   g.transactions,
		Payments:       g.payments,
		Promos:         g.promos,
		Unavailability: g.unavailability,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
