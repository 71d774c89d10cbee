package services

import (
	"sort"
	"strings"
	"time"

	"github.com/kasasa22/Munyonyo-Soccer-Team-sub001/internal/models"
	"github.com/kasasa22/Munyonyo-Soccer-Team-sub001/internal/repositories"
)

// In-memory repository fakes. They keep records in insertion order and
// apply the same filters the SQL implementations would.

type fakePlayerRepo struct {
	players map[int64]models.Player
	nextID  int64
}

func newFakePlayerRepo() *fakePlayerRepo {
	return &fakePlayerRepo{players: map[int64]models.Player{}, nextID: 1}
}

func (r *fakePlayerRepo) CreatePlayer(player *models.Player) (int64, error) {
	id := r.nextID
	r.nextID++
	player.ID = id
	player.CreatedAt = time.Now()
	player.UpdatedAt = player.CreatedAt
	r.players[id] = *player
	return id, nil
}

func (r *fakePlayerRepo) GetPlayerByID(id int64) (*models.Player, error) {
	player, ok := r.players[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &player, nil
}

func (r *fakePlayerRepo) GetPlayers(limit, offset int, searchTerm *string) ([]models.Player, int, error) {
	all, _ := r.GetAllPlayers()
	if searchTerm != nil {
		filtered := []models.Player{}
		for _, p := range all {
			if strings.Contains(strings.ToLower(p.FullName), strings.ToLower(*searchTerm)) {
				filtered = append(filtered, p)
			}
		}
		all = filtered
	}
	total := len(all)
	if offset >= total {
		return []models.Player{}, total, nil
	}
	end := offset + limit
	if limit <= 0 || end > total {
		end = total
	}
	return all[offset:end], total, nil
}

func (r *fakePlayerRepo) GetAllPlayers() ([]models.Player, error) {
	ids := make([]int64, 0, len(r.players))
	for id := range r.players {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	all := make([]models.Player, 0, len(ids))
	for _, id := range ids {
		all = append(all, r.players[id])
	}
	return all, nil
}

func (r *fakePlayerRepo) UpdatePlayer(player *models.Player) error {
	if _, ok := r.players[player.ID]; !ok {
		return repositories.ErrNotFound
	}
	player.UpdatedAt = time.Now()
	r.players[player.ID] = *player
	return nil
}

func (r *fakePlayerRepo) DeletePlayer(id int64) error {
	if _, ok := r.players[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(r.players, id)
	return nil
}

type fakePaymentRepo struct {
	payments map[int64]models.Payment
	nextID   int64
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{payments: map[int64]models.Payment{}, nextID: 1}
}

func (r *fakePaymentRepo) CreatePayment(payment *models.Payment) (int64, error) {
	id := r.nextID
	r.nextID++
	payment.ID = id
	payment.CreatedAt = time.Now()
	payment.UpdatedAt = payment.CreatedAt
	r.payments[id] = *payment
	return id, nil
}

func (r *fakePaymentRepo) GetPaymentByID(id int64) (*models.Payment, error) {
	payment, ok := r.payments[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &payment, nil
}

func paymentMatches(p models.Payment, filter repositories.PaymentFilter) bool {
	if filter.PlayerID != nil && p.PlayerID != *filter.PlayerID {
		return false
	}
	if filter.PaymentType != nil && p.PaymentType != *filter.PaymentType {
		return false
	}
	if filter.StartDate != nil && p.PaymentDate.Before(*filter.StartDate) {
		return false
	}
	if filter.EndDate != nil && p.PaymentDate.After(*filter.EndDate) {
		return false
	}
	return true
}

func (r *fakePaymentRepo) GetAllPayments(filter repositories.PaymentFilter) ([]models.Payment, error) {
	ids := make([]int64, 0, len(r.payments))
	for id := range r.payments {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	all := []models.Payment{}
	for _, id := range ids {
		if paymentMatches(r.payments[id], filter) {
			all = append(all, r.payments[id])
		}
	}
	return all, nil
}

func (r *fakePaymentRepo) GetPayments(filter repositories.PaymentFilter, limit, offset int) ([]models.Payment, int, error) {
	all, _ := r.GetAllPayments(filter)
	total := len(all)
	if offset >= total {
		return []models.Payment{}, total, nil
	}
	end := offset + limit
	if limit <= 0 || end > total {
		end = total
	}
	return all[offset:end], total, nil
}

func (r *fakePaymentRepo) UpdatePayment(payment *models.Payment) error {
	if _, ok := r.payments[payment.ID]; !ok {
		return repositories.ErrNotFound
	}
	payment.UpdatedAt = time.Now()
	r.payments[payment.ID] = *payment
	return nil
}

func (r *fakePaymentRepo) DeletePayment(id int64) error {
	if _, ok := r.payments[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(r.payments, id)
	return nil
}

type fakeExpenseRepo struct {
	expenses map[int64]models.Expense
	nextID   int64
}

func newFakeExpenseRepo() *fakeExpenseRepo {
	return &fakeExpenseRepo{expenses: map[int64]models.Expense{}, nextID: 1}
}

func (r *fakeExpenseRepo) CreateExpense(expense *models.Expense) (int64, error) {
	id := r.nextID
	r.nextID++
	expense.ID = id
	expense.CreatedAt = time.Now()
	expense.UpdatedAt = expense.CreatedAt
	r.expenses[id] = *expense
	return id, nil
}

func (r *fakeExpenseRepo) GetExpenseByID(id int64) (*models.Expense, error) {
	expense, ok := r.expenses[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &expense, nil
}

func expenseMatches(e models.Expense, filter repositories.ExpenseFilter) bool {
	if filter.Category != nil && e.Category != *filter.Category {
		return false
	}
	if filter.MatchDayID != nil && (e.MatchDayID == nil || *e.MatchDayID != *filter.MatchDayID) {
		return false
	}
	if filter.StartDate != nil && e.ExpenseDate.Before(*filter.StartDate) {
		return false
	}
	if filter.EndDate != nil && e.ExpenseDate.After(*filter.EndDate) {
		return false
	}
	return true
}

func (r *fakeExpenseRepo) GetAllExpenses(filter repositories.ExpenseFilter) ([]models.Expense, error) {
	ids := make([]int64, 0, len(r.expenses))
	for id := range r.expenses {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	all := []models.Expense{}
	for _, id := range ids {
		if expenseMatches(r.expenses[id], filter) {
			all = append(all, r.expenses[id])
		}
	}
	return all, nil
}

func (r *fakeExpenseRepo) GetExpenses(filter repositories.ExpenseFilter, limit, offset int) ([]models.Expense, int, error) {
	all, _ := r.GetAllExpenses(filter)
	total := len(all)
	if offset >= total {
		return []models.Expense{}, total, nil
	}
	end := offset + limit
	if limit <= 0 || end > total {
		end = total
	}
	return all[offset:end], total, nil
}

func (r *fakeExpenseRepo) GetExpensesByMatchDay(matchDayID int64) ([]models.Expense, error) {
	return r.GetAllExpenses(repositories.ExpenseFilter{MatchDayID: &matchDayID})
}

func (r *fakeExpenseRepo) UpdateExpense(expense *models.Expense) error {
	if _, ok := r.expenses[expense.ID]; !ok {
		return repositories.ErrNotFound
	}
	expense.UpdatedAt = time.Now()
	r.expenses[expense.ID] = *expense
	return nil
}

func (r *fakeExpenseRepo) DeleteExpense(id int64) error {
	if _, ok := r.expenses[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(r.expenses, id)
	return nil
}

type fakeMatchDayRepo struct {
	matchDays map[int64]models.MatchDay
	nextID    int64
}

func newFakeMatchDayRepo() *fakeMatchDayRepo {
	return &fakeMatchDayRepo{matchDays: map[int64]models.MatchDay{}, nextID: 1}
}

func (r *fakeMatchDayRepo) CreateMatchDay(matchDay *models.MatchDay) (int64, error) {
	for _, existing := range r.matchDays {
		if sameCalendarDay(existing.MatchDate, matchDay.MatchDate) {
			return 0, repositories.ErrDuplicateKey
		}
	}
	id := r.nextID
	r.nextID++
	matchDay.ID = id
	matchDay.CreatedAt = time.Now()
	matchDay.UpdatedAt = matchDay.CreatedAt
	r.matchDays[id] = *matchDay
	return id, nil
}

func (r *fakeMatchDayRepo) GetMatchDayByID(id int64) (*models.MatchDay, error) {
	matchDay, ok := r.matchDays[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &matchDay, nil
}

func matchDayMatches(m models.MatchDay, filter repositories.MatchDayFilter) bool {
	if filter.StartDate != nil && m.MatchDate.Before(*filter.StartDate) {
		return false
	}
	if filter.EndDate != nil && m.MatchDate.After(*filter.EndDate) {
		return false
	}
	return true
}

func (r *fakeMatchDayRepo) GetAllMatchDays(filter repositories.MatchDayFilter) ([]models.MatchDay, error) {
	ids := make([]int64, 0, len(r.matchDays))
	for id := range r.matchDays {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	all := []models.MatchDay{}
	for _, id := range ids {
		if matchDayMatches(r.matchDays[id], filter) {
			all = append(all, r.matchDays[id])
		}
	}
	return all, nil
}

func (r *fakeMatchDayRepo) GetMatchDays(filter repositories.MatchDayFilter, limit, offset int) ([]models.MatchDay, int, error) {
	all, _ := r.GetAllMatchDays(filter)
	total := len(all)
	if offset >= total {
		return []models.MatchDay{}, total, nil
	}
	end := offset + limit
	if limit <= 0 || end > total {
		end = total
	}
	return all[offset:end], total, nil
}

func (r *fakeMatchDayRepo) UpdateMatchDay(matchDay *models.MatchDay) error {
	if _, ok := r.matchDays[matchDay.ID]; !ok {
		return repositories.ErrNotFound
	}
	matchDay.UpdatedAt = time.Now()
	r.matchDays[matchDay.ID] = *matchDay
	return nil
}

func (r *fakeMatchDayRepo) DeleteMatchDay(id int64) error {
	if _, ok := r.matchDays[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(r.matchDays, id)
	return nil
}

type fakeUserRepo struct {
	users  map[int64]models.User
	hashes map[int64]string
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[int64]models.User{}, hashes: map[int64]string{}, nextID: 1}
}

func (r *fakeUserRepo) CreateUser(user *models.User, passwordHash string) (int64, error) {
	for _, existing := range r.users {
		if strings.EqualFold(existing.Email, user.Email) {
			return 0, repositories.ErrDuplicateKey
		}
	}
	id := r.nextID
	r.nextID++
	user.ID = id
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	r.users[id] = *user
	r.hashes[id] = passwordHash
	return id, nil
}

func (r *fakeUserRepo) FindUserByID(id int64) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &user, nil
}

func (r *fakeUserRepo) FindUserByEmail(email string) (*models.User, string, error) {
	for id, user := range r.users {
		if strings.EqualFold(user.Email, email) {
			u := user
			return &u, r.hashes[id], nil
		}
	}
	return nil, "", repositories.ErrNotFound
}

func (r *fakeUserRepo) GetUsers(limit, offset int, searchTerm *string) ([]models.User, int, error) {
	ids := make([]int64, 0, len(r.users))
	for id := range r.users {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	all := []models.User{}
	for _, id := range ids {
		u := r.users[id]
		if searchTerm != nil {
			term := strings.ToLower(*searchTerm)
			if !strings.Contains(strings.ToLower(u.FullName), term) && !strings.Contains(strings.ToLower(u.Email), term) {
				continue
			}
		}
		all = append(all, u)
	}
	total := len(all)
	if offset >= total {
		return []models.User{}, total, nil
	}
	end := offset + limit
	if limit <= 0 || end > total {
		end = total
	}
	return all[offset:end], total, nil
}

func (r *fakeUserRepo) UpdateUser(user *models.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return repositories.ErrNotFound
	}
	user.UpdatedAt = time.Now()
	r.users[user.ID] = *user
	return nil
}

func (r *fakeUserRepo) UpdateUserPassword(id int64, passwordHash string) error {
	if _, ok := r.users[id]; !ok {
		return repositories.ErrNotFound
	}
	r.hashes[id] = passwordHash
	return nil
}

func (r *fakeUserRepo) DeleteUser(id int64) error {
	if _, ok := r.users[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(r.users, id)
	delete(r.hashes, id)
	return nil
}

// mustDate parses a YYYY-MM-DD literal in tests.
func mustDate(s string) time.Time {
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		panic(err)
	}
	return d
}
