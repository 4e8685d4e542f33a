package integration

import (
	"fmt"
	"net/http"
	"testing"
)

func TestMoneyFlow_RecordListAndSummarize(t *testing.T) {
	app := setupApp(t)
	app.registerUser(t, "dave", "password123")
	token := app.signInUser(t, "dave", "password123")

	// Record an income and two expenses; categories are created on the fly.
	app.createTransaction(t, token,
		`{"title":"Paycheck","amount":1000,"type":"INCOME","categoryName":"Salary","date":"2026-02-01"}`)
	app.createTransaction(t, token,
		`{"title":"Groceries","amount":150,"type":"EXPENSE","categoryName":"Food","date":"2026-02-05"}`)
	app.createTransaction(t, token,
		`{"title":"Dinner","amount":50,"type":"EXPENSE","categoryName":"Food","date":"2026-02-10"}`)

	// Categories were created implicitly, ordered by name.
	rec := app.request("GET", "/api/transactions/category", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("list categories failed: %d %s", rec.Code, rec.Body.String())
	}
	categories := parseJSON(t, rec)["data"].([]interface{})
	if len(categories) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(categories))
	}
	first := categories[0].(map[string]interface{})
	if first["name"] != "Food" {
		t.Errorf("expected Food first, got %v", first["name"])
	}

	// Listing returns all three, newest first.
	rec = app.request("GET", "/api/transactions/", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("list transactions failed: %d %s", rec.Code, rec.Body.String())
	}
	transactions := parseJSON(t, rec)["data"].([]interface{})
	if len(transactions) != 3 {
		t.Fatalf("expected 3 transactions, got %d", len(transactions))
	}
	newest := transactions[0].(map[string]interface{})
	if newest["title"] != "Dinner" {
		t.Errorf("expected newest transaction Dinner, got %v", newest["title"])
	}

	// Dashboard totals cover both sides; the pie defaults to expenses.
	rec = app.request("GET", "/api/dashboard/", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("dashboard failed: %d %s", rec.Code, rec.Body.String())
	}
	data := parseJSON(t, rec)["data"].(map[string]interface{})
	summary := data["summary"].(map[string]interface{})
	if summary["totalIncome"] != float64(1000) {
		t.Errorf("expected totalIncome 1000, got %v", summary["totalIncome"])
	}
	if summary["totalExpense"] != float64(200) {
		t.Errorf("expected totalExpense 200, got %v", summary["totalExpense"])
	}
	if summary["balance"] != float64(800) {
		t.Errorf("expected balance 800, got %v", summary["balance"])
	}
	pie := data["pieChartData"].([]interface{})
	if len(pie) != 1 {
		t.Fatalf("expected 1 pie slice, got %d", len(pie))
	}
	slice := pie[0].(map[string]interface{})
	if slice["category"] != "Food" || slice["total"] != float64(200) {
		t.Errorf("unexpected pie slice: %v", slice)
	}
}

func TestMoneyFlow_DateRangeFilter(t *testing.T) {
	app := setupApp(t)
	app.registerUser(t, "erin", "password123")
	token := app.signInUser(t, "erin", "password123")

	app.createTransaction(t, token,
		`{"title":"January rent","amount":900,"type":"EXPENSE","categoryName":"Rent","date":"2026-01-05"}`)
	app.createTransaction(t, token,
		`{"title":"February rent","amount":900,"type":"EXPENSE","categoryName":"Rent","date":"2026-02-05"}`)

	rec := app.request("GET", "/api/transactions/?startDate=2026-02-01&endDate=2026-02-28", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("filtered list failed: %d %s", rec.Code, rec.Body.String())
	}
	transactions := parseJSON(t, rec)["data"].([]interface{})
	if len(transactions) != 1 {
		t.Fatalf("expected 1 transaction in February, got %d", len(transactions))
	}

	rec = app.request("GET", "/api/dashboard/?startDate=2026-02-01&endDate=2026-02-28", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("filtered dashboard failed: %d %s", rec.Code, rec.Body.String())
	}
	summary := parseJSON(t, rec)["data"].(map[string]interface{})["summary"].(map[string]interface{})
	if summary["totalExpense"] != float64(900) {
		t.Errorf("expected totalExpense 900 for February, got %v", summary["totalExpense"])
	}
}

func TestMoneyFlow_UpdateAndDelete(t *testing.T) {
	app := setupApp(t)
	app.registerUser(t, "frank", "password123")
	token := app.signInUser(t, "frank", "password123")

	created := app.createTransaction(t, token,
		`{"title":"Coffee","amount":60,"type":"EXPENSE","categoryName":"Food"}`)
	id := created["id"].(float64)

	rec := app.request("PUT", fmt.Sprintf("/api/transactions/%.0f", id),
		`{"title":"Espresso","amount":75}`, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("update failed: %d %s", rec.Code, rec.Body.String())
	}

	rec = app.request("GET", "/api/transactions/", "", token)
	transactions := parseJSON(t, rec)["data"].([]interface{})
	updated := transactions[0].(map[string]interface{})
	if updated["title"] != "Espresso" {
		t.Errorf("expected updated title Espresso, got %v", updated["title"])
	}
	if updated["amount"] != float64(75) {
		t.Errorf("expected updated amount 75, got %v", updated["amount"])
	}

	rec = app.request("DELETE", fmt.Sprintf("/api/transactions/%.0f", id), "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("delete failed: %d %s", rec.Code, rec.Body.String())
	}

	rec = app.request("GET", "/api/transactions/", "", token)
	transactions = parseJSON(t, rec)["data"].([]interface{})
	if len(transactions) != 0 {
		t.Errorf("expected no transactions after delete, got %d", len(transactions))
	}

	// Deleting again reports not found.
	rec = app.request("DELETE", fmt.Sprintf("/api/transactions/%.0f", id), "", token)
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 for repeated delete, got %d", rec.Code)
	}
}

func TestMoneyFlow_UsersAreIsolated(t *testing.T) {
	app := setupApp(t)
	app.registerUser(t, "grace", "password123")
	app.registerUser(t, "heidi", "password123")
	graceToken := app.signInUser(t, "grace", "password123")
	heidiToken := app.signInUser(t, "heidi", "password123")

	created := app.createTransaction(t, graceToken,
		`{"title":"Secret purchase","amount":500,"type":"EXPENSE","categoryName":"Shopping"}`)
	id := created["id"].(float64)

	// Heidi cannot see, update, or delete Grace's transaction.
	rec := app.request("GET", "/api/transactions/", "", heidiToken)
	if got := len(parseJSON(t, rec)["data"].([]interface{})); got != 0 {
		t.Errorf("expected no transactions visible to other user, got %d", got)
	}

	rec = app.request("PUT", fmt.Sprintf("/api/transactions/%.0f", id),
		`{"title":"Hijacked"}`, heidiToken)
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 for cross-user update, got %d", rec.Code)
	}

	rec = app.request("DELETE", fmt.Sprintf("/api/transactions/%.0f", id), "", heidiToken)
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 for cross-user delete, got %d", rec.Code)
	}

	// The row is still there for Grace.
	rec = app.request("GET", "/api/transactions/", "", graceToken)
	if got := len(parseJSON(t, rec)["data"].([]interface{})); got != 1 {
		t.Errorf("expected transaction to survive, got %d rows", got)
	}
}
