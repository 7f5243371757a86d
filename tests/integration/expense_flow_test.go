package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
)

func TestExpenseFlow_CRUD(t *testing.T) {
	app := setupApp(t)
	token, _ := app.signupUser(t, "crud@test.com", "password123")
	categoryID := app.createCategory(t, token, "Food")

	// Create
	expenseID := app.createExpense(t, token, "Lunch", 12.5, categoryID)

	// Read back
	rec := app.request("GET", fmt.Sprintf("/api/expense/%v", expenseID), "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("get expense failed: %d %s", rec.Code, rec.Body.String())
	}
	expense := parseJSON(t, rec)["expense"].(map[string]interface{})
	if expense["name"] != "Lunch" || expense["amount"].(float64) != 12.5 {
		t.Errorf("unexpected expense: %v", expense)
	}
	if expense["paid_by"] != "Cash" {
		t.Errorf("expected default paid_by Cash, got %v", expense["paid_by"])
	}
	if expense["is_spend"] != true {
		t.Errorf("expected is_spend true by default, got %v", expense["is_spend"])
	}
	category := expense["category"].(map[string]interface{})
	if category["name"] != "Food" {
		t.Errorf("expected joined category Food, got %v", category["name"])
	}

	// Update
	body := fmt.Sprintf(`{"name":"Dinner","amount":20,"category_id":%v,"paid_by":"Card"}`, categoryID)
	rec = app.request("PUT", fmt.Sprintf("/api/expense/%v", expenseID), body, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("update failed: %d %s", rec.Code, rec.Body.String())
	}
	updated := parseJSON(t, rec)["expense"].(map[string]interface{})
	if updated["name"] != "Dinner" || updated["paid_by"] != "Card" {
		t.Errorf("update not applied: %v", updated)
	}

	// Delete
	rec = app.request("DELETE", fmt.Sprintf("/api/expense/%v", expenseID), "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("delete failed: %d %s", rec.Code, rec.Body.String())
	}

	// Gone
	rec = app.request("GET", fmt.Sprintf("/api/expense/%v", expenseID), "", token)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", rec.Code)
	}
}

func TestExpenseFlow_IncomeRecord(t *testing.T) {
	app := setupApp(t)
	token, _ := app.signupUser(t, "income@test.com", "password123")
	categoryID := app.createCategory(t, token, "Salary")

	body := fmt.Sprintf(`{"name":"March salary","amount":2500,"category_id":%v,"is_spend":false}`, categoryID)
	rec := app.request("POST", "/api/expense/", body, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create income failed: %d %s", rec.Code, rec.Body.String())
	}
	created := parseJSON(t, rec)["expense"].(map[string]interface{})
	if created["is_spend"] != false {
		t.Errorf("expected is_spend false in create response, got %v", created["is_spend"])
	}

	// Read back from the database, not the create response
	id := created["id"].(float64)
	rec = app.request("GET", fmt.Sprintf("/api/expense/%v", id), "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("get income failed: %d %s", rec.Code, rec.Body.String())
	}
	expense := parseJSON(t, rec)["expense"].(map[string]interface{})
	if expense["is_spend"] != false {
		t.Errorf("expected stored income to keep is_spend false, got %v", expense["is_spend"])
	}
}

func TestExpenseFlow_IsolationBetweenUsers(t *testing.T) {
	app := setupApp(t)
	aliceToken, _ := app.signupUser(t, "alice@test.com", "password123")
	bobToken, _ := app.signupUser(t, "bob@test.com", "password123")
	categoryID := app.createCategory(t, aliceToken, "Shared")

	expenseID := app.createExpense(t, aliceToken, "Alice's lunch", 10, categoryID)

	// Bob cannot see Alice's expense
	rec := app.request("GET", fmt.Sprintf("/api/expense/%v", expenseID), "", bobToken)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for another user's expense, got %d", rec.Code)
	}

	// Bob's list is empty; categories are shared
	rec = app.request("GET", "/api/expense/", "", bobToken)
	if rec.Code != http.StatusOK {
		t.Fatalf("list failed: %d %s", rec.Code, rec.Body.String())
	}
	expenses := parseJSON(t, rec)["expenses"].([]interface{})
	if len(expenses) != 0 {
		t.Errorf("expected empty list for Bob, got %d expenses", len(expenses))
	}

	rec = app.request("GET", "/api/expense/categories", "", bobToken)
	if rec.Code != http.StatusOK {
		t.Fatalf("categories failed: %d %s", rec.Code, rec.Body.String())
	}
	categories := parseJSON(t, rec)["categories"].([]interface{})
	if len(categories) != 1 {
		t.Errorf("expected shared category visible to Bob, got %d", len(categories))
	}
}

func TestExpenseFlow_Filters(t *testing.T) {
	app := setupApp(t)
	token, _ := app.signupUser(t, "filters@test.com", "password123")
	food := app.createCategory(t, token, "Food")
	travel := app.createCategory(t, token, "Travel")

	app.createExpense(t, token, "Lunch", 10, food)
	app.createExpense(t, token, "Taxi", 25, travel)
	app.createExpense(t, token, "Flight", 300, travel)

	// Category filter
	rec := app.request("GET", "/api/expense/?type=category&value=Travel", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("filter failed: %d %s", rec.Code, rec.Body.String())
	}
	expenses := parseJSON(t, rec)["expenses"].([]interface{})
	if len(expenses) != 2 {
		t.Errorf("expected 2 travel expenses, got %d", len(expenses))
	}

	// Unknown category value is a 404
	rec = app.request("GET", "/api/expense/?type=category&value=Nothing", "", token)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown category filter, got %d", rec.Code)
	}

	// Inclusive amount bounds
	rec = app.request("GET", "/api/expense/?amount_gt=10&amount_lt=25", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("amount filter failed: %d %s", rec.Code, rec.Body.String())
	}
	expenses = parseJSON(t, rec)["expenses"].([]interface{})
	if len(expenses) != 2 {
		t.Errorf("expected 2 expenses within [10, 25], got %d", len(expenses))
	}

	// Invalid discriminator
	rec = app.request("GET", "/api/expense/?type=owner&value=x", "", token)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid filter type, got %d", rec.Code)
	}
}

func TestExpenseFlow_Grouping(t *testing.T) {
	app := setupApp(t)
	token, _ := app.signupUser(t, "grouping@test.com", "password123")
	food := app.createCategory(t, token, "Food")
	travel := app.createCategory(t, token, "Travel")

	app.createExpense(t, token, "Lunch", 10, food)
	app.createExpense(t, token, "Dinner", 30, food)
	app.createExpense(t, token, "Taxi", 25, travel)

	rec := app.request("GET", "/api/expense/group?by=category", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("group failed: %d %s", rec.Code, rec.Body.String())
	}
	groups := parseJSON(t, rec)
	if len(groups["Food"].([]interface{})) != 2 {
		t.Errorf("expected 2 Food expenses, got %v", groups["Food"])
	}
	if len(groups["Travel"].([]interface{})) != 1 {
		t.Errorf("expected 1 Travel expense, got %v", groups["Travel"])
	}

	// Grouped row count equals the ungrouped list count
	rec = app.request("GET", "/api/expense/", "", token)
	all := parseJSON(t, rec)["expenses"].([]interface{})
	grouped := 0
	for _, g := range groups {
		grouped += len(g.([]interface{}))
	}
	if grouped != len(all) {
		t.Errorf("grouping dropped rows: %d grouped vs %d total", grouped, len(all))
	}

	rec = app.request("GET", "/api/expense/group?by=amount", "", token)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid grouping, got %d", rec.Code)
	}
}

func TestChartFlow_CategoryExpense(t *testing.T) {
	app := setupApp(t)
	token, _ := app.signupUser(t, "charts@test.com", "password123")
	food := app.createCategory(t, token, "Food")
	travel := app.createCategory(t, token, "Travel")

	app.createExpense(t, token, "Lunch", 10, food)
	app.createExpense(t, token, "Dinner", 15, food)
	app.createExpense(t, token, "Taxi", 40, travel)

	rec := app.request("GET", "/api/charts/category_expense", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("chart failed: %d %s", rec.Code, rec.Body.String())
	}

	var rows [][]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &rows); err != nil {
		t.Fatalf("failed to parse chart rows: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d", len(rows))
	}
	if rows[0][0] != "Category" || rows[0][1] != "Amount" {
		t.Errorf("unexpected header: %v", rows[0])
	}
	if rows[1][0] != "Food" || rows[1][1].(float64) != 25 {
		t.Errorf("unexpected Food row: %v", rows[1])
	}
	if rows[2][0] != "Travel" || rows[2][1].(float64) != 40 {
		t.Errorf("unexpected Travel row: %v", rows[2])
	}
}
