package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"text/tabwriter"
	"time"

	"timetrack/client"
	"timetrack/views"

	"github.com/joho/godotenv"
)

type app struct {
	api      *client.Client
	sessions *client.SessionStore
	in       *bufio.Scanner
	out      io.Writer
}

func main() {
	log.SetFlags(0)
	godotenv.Load()

	base := os.Getenv("TIMETRACK_API_URL")
	if base == "" {
		base = "http://localhost:8040/api"
	}

	a := &app{
		api:      client.New(base),
		sessions: client.NewSessionStore(),
		in:       bufio.NewScanner(os.Stdin),
		out:      os.Stdout,
	}
	a.run()
}

func (a *app) run() {
	for {
		sess := a.sessions.Load()
		if sess == nil {
			if !a.loginScreen() {
				return
			}
			continue
		}
		a.api.Token = sess.Token
		var stay bool
		if sess.Role == "manager" {
			stay = a.managerDashboard(sess)
		} else {
			stay = a.storeDashboard(sess)
		}
		if !stay {
			return
		}
	}
}

func (a *app) printf(format string, args ...interface{}) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *app) prompt(label string) string {
	a.printf("%s: ", label)
	if !a.in.Scan() {
		return ""
	}
	return a.in.Text()
}

func (a *app) fail(err error) {
	a.printf("  ! %v\n", err)
}

// loginScreen returns false when the user quits.
func (a *app) loginScreen() bool {
	a.printf("\n== TimeTrack login == (blank username quits)\n")
	username := a.prompt("Username")
	if username == "" {
		return false
	}
	password := a.prompt("Password")
	otp := a.prompt("Hardware token code (managers leave blank)")

	result, err := a.api.Login(a.sessions, username, password, otp)
	if err != nil {
		a.fail(err)
		return true
	}
	if result.Landing == client.LandingManager {
		a.printf("Welcome, %s (manager)\n", result.Session.Name)
	} else {
		a.printf("Welcome, %s\n", result.Session.StoreName)
	}
	return true
}

func (a *app) managerDashboard(sess *client.Session) bool {
	for {
		a.printf("\n== Manager dashboard ==\n")
		a.printf(" 1) Store cards\n 2) Inventory\n 3) Add store\n 4) Edit store\n 5) Remove store\n 6) Hardware tokens\n 7) Export reports\n 8) Logout\n 0) Quit\n")
		switch a.prompt("Choice") {
		case "1":
			a.storeCards()
		case "2":
			a.managerInventoryPage()
		case "3":
			a.addStoreForm()
		case "4":
			a.editStoreForm()
		case "5":
			a.removeStore()
		case "6":
			a.tokenRegistry()
		case "7":
			a.exportReports()
		case "8":
			client.Logout(a.sessions)
			return true
		case "0":
			return false
		}
	}
}

func (a *app) storeCards() {
	stores, err := a.api.ListStores()
	if err != nil {
		a.fail(err)
		return
	}
	for _, store := range stores {
		card := views.LoadStoreCard(a.api, store.Name)
		a.printf("\n-- %s (boxes: %d) --\n", store.Name, store.TotalBoxes)
		if card.Clockins.Err != nil {
			a.printf("  clock-ins: failed to load\n")
		} else {
			a.printf("  clock-ins today: %d\n", card.Clockins.Count)
		}
		if card.Inventory.Err != nil {
			a.printf("  inventory: failed to load\n")
		} else {
			a.printf("  inventory: %d units across %d items\n", card.Inventory.TotalQty, card.Inventory.ItemCount)
		}
		if card.History.Err != nil {
			a.printf("  snapshots: failed to load\n")
		} else {
			a.printf("  snapshots: %d (latest %s)\n", card.History.Count, card.History.LatestDate)
		}
		if card.Eod.Err != nil {
			a.printf("  EOD reports: failed to load\n")
		} else {
			a.printf("  EOD reports: %d (latest %s)\n", card.Eod.Count, card.Eod.LatestDate)
		}
	}
}

func (a *app) addStoreForm() {
	for {
		form := views.StoreForm{
			Name:            a.prompt("Store name"),
			TotalBoxes:      a.prompt("Total boxes"),
			Username:        a.prompt("Username"),
			Password:        a.prompt("Password"),
			ConfirmPassword: a.prompt("Confirm password"),
		}
		boxes, err := form.Validate(false)
		if err != nil {
			a.fail(err)
			continue
		}
		if _, err := a.api.CreateStore(form.Name, boxes, form.Username, form.Password); err != nil {
			a.fail(err)
			continue
		}
		a.printf("Store created.\n")
		return
	}
}

func (a *app) editStoreForm() {
	name := a.prompt("Store to edit")
	if name == "" {
		return
	}
	for {
		form := views.StoreForm{
			Name:            name,
			TotalBoxes:      a.prompt("Total boxes"),
			Username:        a.prompt("Username"),
			Password:        a.prompt("New password (blank keeps current)"),
			ConfirmPassword: "",
		}
		newName := a.prompt("New name (blank keeps current)")
		if form.Password != "" {
			form.ConfirmPassword = a.prompt("Confirm password")
		}
		boxes, err := form.Validate(true)
		if err != nil {
			a.fail(err)
			continue
		}
		if _, err := a.api.UpdateStore(name, newName, boxes, form.Username, form.Password); err != nil {
			a.fail(err)
			continue
		}
		a.printf("Store updated.\n")
		return
	}
}

func (a *app) removeStore() {
	name := a.prompt("Store to remove")
	if name == "" {
		return
	}
	if a.prompt("Type the store name again to confirm") != name {
		a.printf("Not confirmed.\n")
		return
	}
	if err := a.api.DeleteStore(name); err != nil {
		a.fail(err)
		return
	}
	a.printf("Store removed.\n")
}

func (a *app) tokenRegistry() {
	name := a.prompt("Store name")
	if name == "" {
		return
	}
	for {
		keys, err := a.api.ListYubikeys(name)
		if err != nil {
			a.fail(err)
			return
		}
		for _, key := range keys {
			a.printf("  %s  %s  added %s\n", key.YubikeyID, key.YubikeyName, views.FormatLocal(key.AddedAt))
		}
		a.printf(" 1) Register token\n 2) Remove token\n 0) Back\n")
		switch a.prompt("Choice") {
		case "1":
			otp := a.prompt("Touch the token now (one-time code)")
			label := a.prompt("Token label")
			if err := a.api.RegisterYubikey(name, otp, label); err != nil {
				a.fail(err)
				continue
			}
			a.printf("Token registered.\n")
		case "2":
			id := a.prompt("Token id to remove")
			if err := a.api.RemoveYubikey(name, id); err != nil {
				a.fail(err)
				continue
			}
			a.printf("Token removed.\n")
		default:
			return
		}
	}
}

func (a *app) storeDashboard(sess *client.Session) bool {
	for {
		a.printf("\n== %s ==\n", sess.StoreName)
		a.printf(" 1) Inventory\n 2) Submit snapshot\n 3) EOD reports\n 4) Submit EOD\n 5) Timeclock\n 6) Employees\n 7) Logout\n 0) Quit\n")
		switch a.prompt("Choice") {
		case "1":
			a.inventoryPage(sess)
		case "2":
			a.submitSnapshot(sess)
		case "3":
			a.eodList(sess)
		case "4":
			a.submitEod(sess)
		case "5":
			a.timeclockPage(sess)
		case "6":
			a.employeesPage(sess)
		case "7":
			client.Logout(a.sessions)
			return true
		case "0":
			return false
		}
	}
}

func (a *app) inventoryPage(sess *client.Session) {
	items, ok := a.renderInventory(sess.StoreID, sess.Role)
	if !ok {
		return
	}
	a.updateQuantityFlow(sess.StoreID, items)
}

// managerInventoryPage is the manager's inventory view: the same table
// plus the edit and remove actions the store role does not get.
func (a *app) managerInventoryPage() {
	storeID := a.prompt("Store name")
	if storeID == "" {
		return
	}
	for {
		items, ok := a.renderInventory(storeID, "manager")
		if !ok {
			return
		}
		a.printf(" 1) Update quantity\n 2) Add item\n 3) Edit item\n 4) Remove item\n 0) Back\n")
		switch a.prompt("Choice") {
		case "1":
			a.updateQuantityFlow(storeID, items)
		case "2":
			a.addItemForm(storeID)
		case "3":
			a.editItemForm(storeID, items)
		case "4":
			a.removeItem(storeID, items)
		default:
			return
		}
	}
}

func (a *app) renderInventory(storeID, role string) ([]client.InventoryItem, bool) {
	items, err := a.api.ListInventory(storeID)
	if err != nil {
		a.fail(err)
		return nil, false
	}
	query := a.prompt("Filter (blank for all)")
	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	views.RenderTable(tw, items, query)
	a.printf("Actions: %v\n", views.RowActions(role))
	return items, true
}

func findItem(items []client.InventoryItem, sku string) *client.InventoryItem {
	for i := range items {
		if items[i].SKU == sku {
			return &items[i]
		}
	}
	return nil
}

func (a *app) updateQuantityFlow(storeID string, items []client.InventoryItem) {
	sku := a.prompt("SKU to update (blank to go back)")
	if sku == "" {
		return
	}
	target := findItem(items, sku)
	if target == nil {
		a.printf("No such SKU.\n")
		return
	}
	qty, err := views.ParsePositiveInt(a.prompt("New quantity"))
	if err != nil {
		a.fail(err)
		return
	}
	id, lookupSKU := views.EditKey(*target)
	if _, err := a.api.UpdateQuantity(storeID, id, lookupSKU, qty); err != nil {
		a.fail(err)
		return
	}
	a.printf("Updated.\n")
}

func (a *app) addItemForm(storeID string) {
	for {
		form := views.ItemForm{
			Name:     a.prompt("Item name (blank to cancel)"),
			SKU:      a.prompt("SKU"),
			Quantity: a.prompt("Quantity"),
		}
		if form.Name == "" {
			return
		}
		qty, err := form.Validate()
		if err != nil {
			a.fail(err)
			continue
		}
		if _, err := a.api.AddItem(storeID, form.Name, form.SKU, qty); err != nil {
			a.fail(err)
			continue
		}
		a.printf("Item added.\n")
		return
	}
}

// editItemForm renames an item or assigns it a new SKU. The lookup key
// is always the item's stable id (or its current SKU), never the newly
// typed one.
func (a *app) editItemForm(storeID string, items []client.InventoryItem) {
	sku := a.prompt("SKU to edit (blank to go back)")
	if sku == "" {
		return
	}
	target := findItem(items, sku)
	if target == nil {
		a.printf("No such SKU.\n")
		return
	}
	for {
		a.printf("Editing %s (%s)\n", target.Name, target.SKU)
		name := a.prompt("New name (blank to cancel)")
		if name == "" {
			return
		}
		newSKU := a.prompt("New SKU")
		if newSKU == "" {
			a.fail(fmt.Errorf("new SKU is required"))
			continue
		}
		id, lookupSKU := views.EditKey(*target)
		if _, err := a.api.UpdateDetails(storeID, id, lookupSKU, name, newSKU); err != nil {
			a.fail(err)
			continue
		}
		a.printf("Item updated.\n")
		return
	}
}

func (a *app) removeItem(storeID string, items []client.InventoryItem) {
	sku := a.prompt("SKU to remove (blank to go back)")
	if sku == "" {
		return
	}
	if findItem(items, sku) == nil {
		a.printf("No such SKU.\n")
		return
	}
	if a.prompt("Type the SKU again to confirm removal") != sku {
		a.printf("Not confirmed.\n")
		return
	}
	if err := a.api.DeleteItem(storeID, sku); err != nil {
		a.fail(err)
		return
	}
	a.printf("Item removed.\n")
}

func (a *app) exportReports() {
	storeID := a.prompt("Store name")
	if storeID == "" {
		return
	}
	a.printf(" 1) EOD reports\n 2) Inventory\n 0) Back\n")

	var data []byte
	var fileName string
	var err error
	switch a.prompt("Choice") {
	case "1":
		data, err = a.api.ExportEodReports(storeID)
		fileName = fmt.Sprintf("eod-%s.xlsx", storeID)
	case "2":
		data, err = a.api.ExportInventory(storeID)
		fileName = fmt.Sprintf("inventory-%s.xlsx", storeID)
	default:
		return
	}
	if err != nil {
		a.fail(err)
		return
	}
	if err := os.WriteFile(fileName, data, 0o644); err != nil {
		a.fail(err)
		return
	}
	a.printf("Saved %s.\n", fileName)
}

func (a *app) submitSnapshot(sess *client.Session) {
	today := views.LocalCalendarDate(time.Now())
	if err := a.api.SubmitSnapshot(sess.StoreID, today, today); err != nil {
		a.fail(err)
		return
	}
	a.printf("Snapshot recorded for %s.\n", today)
}

func (a *app) eodList(sess *client.Session) {
	reports, err := a.api.ListEods(sess.StoreID)
	if err != nil {
		a.fail(err)
		return
	}
	deduped := views.LatestPerDate(reports)
	for _, report := range deduped {
		a.printf("  %s  total %.2f  by %s\n", views.ReportDay(report.ReportDate), report.Total1, report.SubmittedBy)
	}
	date := a.prompt("Date to inspect (blank to go back)")
	if date == "" {
		return
	}
	detail, ok := views.BuildEodDetail(reports, date)
	if !ok {
		a.printf("No report for %s.\n", date)
		return
	}
	r := detail.Report
	a.printf("  cash %.2f  credit %.2f  qpay %.2f  boxes %d\n", r.CashAmount, r.CreditAmount, r.QpayAmount, r.BoxesCount)
	a.printf("  total1 %.2f  total2 %.2f (%s)\n", r.Total1, detail.Total2, detail.Variance)
	a.printf("  submitted by %s at %s\n", r.SubmittedBy, views.FormatLocal(r.CreatedAt))
	a.printf("  worked: %v\n", r.EmployeesWorked)
	if r.Notes != "" {
		a.printf("  notes: %s\n", r.Notes)
	}
}

func (a *app) submitEod(sess *client.Session) {
	for {
		cash, err1 := parseAmount(a.prompt("Cash amount"))
		credit, err2 := parseAmount(a.prompt("Credit amount"))
		qpay, err3 := parseAmount(a.prompt("QPay amount"))
		total1, err4 := parseAmount(a.prompt("Register total"))
		boxes, err5 := views.ParsePositiveInt(a.prompt("Boxes count"))
		if err := firstError(err1, err2, err3, err4, err5); err != nil {
			a.fail(err)
			continue
		}
		submission := client.EodSubmission{
			StoreID:      sess.StoreID,
			ReportDate:   views.LocalCalendarDate(time.Now()),
			Notes:        a.prompt("Notes"),
			CashAmount:   cash,
			CreditAmount: credit,
			QpayAmount:   qpay,
			BoxesCount:   boxes,
			Total1:       total1,
			SubmittedBy:  a.prompt("Submitted by"),
		}
		if _, err := a.api.SubmitEod(submission); err != nil {
			a.fail(err)
			continue
		}
		a.printf("EOD report submitted.\n")
		return
	}
}

func (a *app) timeclockPage(sess *client.Session) {
	roster, err := a.api.TodayRoster(sess.StoreID)
	if err != nil {
		a.fail(err)
		return
	}
	a.printf("Today (%s): %d entries\n", roster.Date, roster.TotalCount)
	for _, entry := range roster.Employees {
		if entry.Status == "clocked_in" {
			a.printf("  %s  in since %s  [entry %s]\n", entry.EmployeeName, views.FormatLocal(entry.ClockIn), entry.EntryID)
		} else if entry.HoursWorked != nil {
			a.printf("  %s  %.2f hours\n", entry.EmployeeName, *entry.HoursWorked)
		}
	}
	a.printf(" 1) Clock in\n 2) Clock out\n 3) History\n 0) Back\n")
	switch a.prompt("Choice") {
	case "1":
		id := a.prompt("Employee id")
		result, err := a.api.ClockIn(id)
		if err != nil {
			a.fail(err)
			return
		}
		a.printf("%s clocked in.\n", result.EmployeeName)
	case "2":
		id := a.prompt("Entry id")
		result, err := a.api.ClockOut(id)
		if err != nil {
			a.fail(err)
			return
		}
		a.printf("Clocked out: %.2f hours.\n", result.HoursWorked)
	case "3":
		a.timeclockHistory(sess.StoreID)
	}
}

func (a *app) timeclockHistory(storeID string) {
	days, err := views.ParsePositiveInt(a.prompt("Days back"))
	if err != nil {
		a.fail(err)
		return
	}
	entries, err := a.api.TimeclockHistory(storeID, days)
	if err != nil {
		a.fail(err)
		return
	}
	if len(entries) == 0 {
		a.printf("No entries.\n")
		return
	}
	for _, entry := range entries {
		if entry.HoursWorked != nil {
			a.printf("  %s  %s  %.2f hours\n", views.FormatLocal(entry.ClockIn), entry.EmployeeName, *entry.HoursWorked)
		} else {
			a.printf("  %s  %s  still clocked in\n", views.FormatLocal(entry.ClockIn), entry.EmployeeName)
		}
	}
}

func (a *app) employeesPage(sess *client.Session) {
	employees, err := a.api.ListEmployees(sess.StoreID)
	if err != nil {
		a.fail(err)
		return
	}
	for _, employee := range employees {
		a.printf("  %s  %s (%s)\n", employee.ID, employee.Name, employee.Role)
	}
	a.printf(" 1) Add employee\n 2) Remove employee\n 0) Back\n")
	switch a.prompt("Choice") {
	case "1":
		name := a.prompt("Name")
		if name == "" {
			a.printf("Name is required.\n")
			return
		}
		role := a.prompt("Role")
		if _, err := a.api.CreateEmployee(sess.StoreID, name, role); err != nil {
			a.fail(err)
			return
		}
		a.printf("Employee added.\n")
	case "2":
		id := a.prompt("Employee id")
		if err := a.api.DeleteEmployee(id); err != nil {
			a.fail(err)
			return
		}
		a.printf("Employee removed.\n")
	}
}

func parseAmount(s string) (float64, error) {
	if s == "" {
		return 0, nil
	}
	var f float64
	if _, err := fmt.Sscanf(s, "%g", &f); err != nil {
		return 0, fmt.Errorf("not a number: %q", s)
	}
	if f < 0 {
		return 0, fmt.Errorf("amount cannot be negative")
	}
	return f, nil
}

func firstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
