package domain

import "time"

type Role string

const (
	RoleOwner    Role = "owner"
	RoleEmployee Role = "employee"
)

// LocalType identifies one of the two physical sales points. It is the
// partition key for everything in the ledger.
type LocalType string

const (
	LocalEsquina   LocalType = "esquina"
	LocalPrincipal LocalType = "principal"
)

func (l LocalType) Valid() bool {
	return l == LocalEsquina || l == LocalPrincipal
}

func Locals() []LocalType {
	return []LocalType{LocalEsquina, LocalPrincipal}
}

// Sale is a single immutable transaction. The JSON tags match the legacy
// persisted document and must not change.
type Sale struct {
	ID            string    `json:"id"`
	SellerName    string    `json:"sellerName"`
	PaymentMethod string    `json:"paymentMethod"`
	Amount        float64   `json:"amount"`
	Timestamp     int64     `json:"timestamp"`
	Local         LocalType `json:"local"`
}

// Time returns the sale's creation instant in UTC. Timestamp is stored in
// epoch milliseconds.
func (s Sale) Time() time.Time {
	return time.UnixMilli(s.Timestamp).UTC()
}

// DayRecord is a frozen archive of one closed day for one location. Sales and
// Total are snapshots taken at close time and are never recomputed.
type DayRecord struct {
	ID          string    `json:"id"`
	Date        string    `json:"date"`
	DateDisplay string    `json:"dateDisplay"`
	Sales       []Sale    `json:"sales"`
	Total       float64   `json:"total"`
	Local       LocalType `json:"local"`
	ClosedAt    int64     `json:"closedAt"`
}

// DayKey returns the calendar-day portion of the record's close date
// (YYYY-MM-DD in UTC).
func (d DayRecord) DayKey() string {
	if len(d.Date) >= 10 {
		return d.Date[:10]
	}
	return d.Date
}

// LocalSales holds the active, not-yet-archived sales of both locations.
// Using named fields rather than a map makes the exactly-two-locations
// invariant a property of the type.
type LocalSales struct {
	Esquina   []Sale `json:"esquina"`
	Principal []Sale `json:"principal"`
}

func (ls *LocalSales) Get(local LocalType) []Sale {
	if local == LocalPrincipal {
		return ls.Principal
	}
	return ls.Esquina
}

func (ls *LocalSales) Set(local LocalType, sales []Sale) {
	if local == LocalPrincipal {
		ls.Principal = sales
		return
	}
	ls.Esquina = sales
}

// LocalHistory holds the closed days of both locations, newest first.
type LocalHistory struct {
	Esquina   []DayRecord `json:"esquina"`
	Principal []DayRecord `json:"principal"`
}

func (lh *LocalHistory) Get(local LocalType) []DayRecord {
	if local == LocalPrincipal {
		return lh.Principal
	}
	return lh.Esquina
}

func (lh *LocalHistory) Set(local LocalType, days []DayRecord) {
	if local == LocalPrincipal {
		lh.Principal = days
		return
	}
	lh.Esquina = days
}

// AppState is the root persisted document: the whole ledger, serialized in
// full on every mutation under a fixed storage key.
type AppState struct {
	CurrentSales LocalSales   `json:"currentSales"`
	History      LocalHistory `json:"history"`
}

func NewAppState() AppState {
	return AppState{
		CurrentSales: LocalSales{Esquina: []Sale{}, Principal: []Sale{}},
		History:      LocalHistory{Esquina: []DayRecord{}, Principal: []DayRecord{}},
	}
}

// Normalize replaces nil slices left behind by JSON decoding of partial
// documents with empty ones, so the state always marshals back as [] and
// never as null.
func (st *AppState) Normalize() {
	if st.CurrentSales.Esquina == nil {
		st.CurrentSales.Esquina = []Sale{}
	}
	if st.CurrentSales.Principal == nil {
		st.CurrentSales.Principal = []Sale{}
	}
	if st.History.Esquina == nil {
		st.History.Esquina = []DayRecord{}
	}
	if st.History.Principal == nil {
		st.History.Principal = []DayRecord{}
	}
}

// Clone returns a deep copy. DayRecord sales slices are copied as well so a
// caller can never reach back into the live document.
func (st AppState) Clone() AppState {
	out := AppState{}
	out.CurrentSales.Esquina = append([]Sale{}, st.CurrentSales.Esquina...)
	out.CurrentSales.Principal = append([]Sale{}, st.CurrentSales.Principal...)
	out.History.Esquina = cloneDays(st.History.Esquina)
	out.History.Principal = cloneDays(st.History.Principal)
	return out
}

func cloneDays(days []DayRecord) []DayRecord {
	out := make([]DayRecord, len(days))
	for i, day := range days {
		day.Sales = append([]Sale{}, day.Sales...)
		out[i] = day
	}
	return out
}

type RecordSaleRequest struct {
	SellerName    string    `json:"sellerName"`
	PaymentMethod string    `json:"paymentMethod"`
	Amount        float64   `json:"amount"`
	Local         LocalType `json:"local"`
}

type LoginRequest struct {
	Path     string `json:"path"`
	Password string `json:"password,omitempty"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	Role        Role   `json:"role"`
	ExpiresAt   string `json:"expires_at"`
}

type Actor struct {
	Role Role
}

// LocalInfo is the display metadata for one location, served to clients so
// they do not hardcode the location set.
type LocalInfo struct {
	Key   LocalType `json:"key"`
	Name  string    `json:"name"`
	Color string    `json:"color"`
}

// MethodTotal is one row of a per-payment-method breakdown, ordered by
// descending total.
type MethodTotal struct {
	Method string  `json:"method"`
	Total  float64 `json:"total"`
}

// GroupStat is one row of a grouped breakdown carrying both the sale count
// and the summed amount of the group.
type GroupStat struct {
	Key   string  `json:"key"`
	Count int     `json:"count"`
	Total float64 `json:"total"`
}

// DayGroup is one row of the combined history view: both locations' closed
// totals for the same calendar day.
type DayGroup struct {
	Day         string  `json:"day"`
	DateDisplay string  `json:"date_display"`
	Esquina     float64 `json:"esquina"`
	Principal   float64 `json:"principal"`
}

type SaleResponse struct {
	Sale Sale `json:"sale"`
}

type CloseDayResponse struct {
	Day DayRecord `json:"day"`
}

type LocalSummaryResponse struct {
	Local    LocalType   `json:"local"`
	Name     string      `json:"name"`
	Total    float64     `json:"total"`
	Count    int         `json:"count"`
	ByMethod []GroupStat `json:"by_method"`
	BySeller []GroupStat `json:"by_seller"`
	Sales    []Sale      `json:"sales"`
}

type HistoryResponse struct {
	Local LocalType   `json:"local"`
	Days  []DayRecord `json:"days"`
}

type DashboardResponse struct {
	ActiveEsquina   float64       `json:"active_esquina"`
	ActivePrincipal float64       `json:"active_principal"`
	ActiveGlobal    float64       `json:"active_global"`
	ByMethod        []MethodTotal `json:"by_method"`
	History         []DayGroup    `json:"history"`
}

type SearchResponse struct {
	Results []Sale `json:"results"`
	Count   int    `json:"count"`
}

type ConfigResponse struct {
	Sellers        []string    `json:"sellers"`
	PaymentMethods []string    `json:"payment_methods"`
	Locals         []LocalInfo `json:"locals"`
}
