package core

import (
	"shiftcore/pkg/domain"
)

func (r *Reducer) reduceBilling(doc Document, action Action) Document {
	switch action.Type {
	case domain.ActionAddSalesEntry:
		entry, ok := decode[domain.SalesEntry](action.Payload)
		if !ok {
			return doc
		}
		doc.SalesEntries = upsertSalesEntry(doc.SalesEntries, entry, r.newID)
	case domain.ActionBulkUpdateSales:
		entries, ok := decode[[]domain.SalesEntry](action.Payload)
		if !ok {
			return doc
		}
		for _, entry := range entries {
			doc.SalesEntries = upsertSalesEntry(doc.SalesEntries, entry, r.newID)
		}
	case domain.ActionDeleteSalesEntry:
		target, ok := decode[domain.Target](action.Payload)
		if !ok {
			return doc
		}
		doc.SalesEntries = removeByID(doc.SalesEntries, target.ID)
	case domain.ActionAddCustomer:
		customer, ok := decode[domain.Customer](action.Payload)
		if !ok {
			return doc
		}
		customer.ID = r.fillID(customer.ID)
		doc.Customers = append(doc.Customers, customer)
	case domain.ActionUpdateCustomer:
		patch, ok := decode[domain.Patch](action.Payload)
		if !ok {
			return doc
		}
		doc.Customers = patchByID(doc.Customers, patch)
	case domain.ActionDeleteCustomer:
		target, ok := decode[domain.Target](action.Payload)
		if !ok {
			return doc
		}
		doc = deleteCustomer(doc, target.ID)
	case domain.ActionAddInvoice:
		invoice, ok := decode[domain.Invoice](action.Payload)
		if !ok {
			return doc
		}
		invoice.ID = r.fillID(invoice.ID)
		if invoice.Lines == nil {
			invoice.Lines = []domain.InvoiceLine{}
		}
		doc.Invoices = append(doc.Invoices, invoice)
	case domain.ActionUpdateInvoice:
		patch, ok := decode[domain.Patch](action.Payload)
		if !ok {
			return doc
		}
		doc.Invoices = patchByID(doc.Invoices, patch)
	case domain.ActionDeleteInvoice:
		target, ok := decode[domain.Target](action.Payload)
		if !ok {
			return doc
		}
		doc.Invoices = removeByID(doc.Invoices, target.ID)
	case domain.ActionAddSubcontractor:
		sub, ok := decode[domain.Subcontractor](action.Payload)
		if !ok {
			return doc
		}
		sub.ID = r.fillID(sub.ID)
		doc.Subcontractors = append(doc.Subcontractors, sub)
	case domain.ActionUpdateSubcontractor:
		patch, ok := decode[domain.Patch](action.Payload)
		if !ok {
			return doc
		}
		doc.Subcontractors = patchByID(doc.Subcontractors, patch)
	case domain.ActionDeleteSubcontractor:
		target, ok := decode[domain.Target](action.Payload)
		if !ok {
			return doc
		}
		doc = deleteSubcontractor(doc, target.ID)
	case domain.ActionBulkImportRevenue:
		rows, ok := decode[[]domain.SubcontractorRevenue](action.Payload)
		if !ok {
			return doc
		}
		for _, row := range rows {
			if !subcontractorExists(doc, row.SubcontractorID) {
				continue
			}
			doc.SubcontractorRevenues = upsertRevenue(doc.SubcontractorRevenues, row, r.newID)
		}
	case domain.ActionAddSubcontractorPayment:
		payment, ok := decode[domain.SubcontractorPayment](action.Payload)
		if !ok || !subcontractorExists(doc, payment.SubcontractorID) {
			return doc
		}
		payment.ID = r.fillID(payment.ID)
		doc.SubcontractorPayments = append(doc.SubcontractorPayments, payment)
	case domain.ActionDeleteSubcontractorPayment:
		target, ok := decode[domain.Target](action.Payload)
		if !ok {
			return doc
		}
		doc.SubcontractorPayments = removeByID(doc.SubcontractorPayments, target.ID)
	case domain.ActionAddProviderTag:
		tag, ok := decode[domain.ProviderAssistantTag](action.Payload)
		if !ok || !subcontractorExists(doc, tag.SubcontractorID) {
			return doc
		}
		if _, found := doc.FindEmployee(tag.EmployeeID); !found {
			return doc
		}
		tag.ID = r.fillID(tag.ID)
		doc.ProviderAssistantTags = append(doc.ProviderAssistantTags, tag)
	case domain.ActionDeleteProviderTag:
		target, ok := decode[domain.Target](action.Payload)
		if !ok {
			return doc
		}
		doc.ProviderAssistantTags = removeByID(doc.ProviderAssistantTags, target.ID)
	}
	return doc
}

// upsertSalesEntry keeps sales entries unique on (locationId, date, type):
// an incoming row replaces the amount of the existing row for its key.
func upsertSalesEntry(entries []domain.SalesEntry, entry domain.SalesEntry, newID func() string) []domain.SalesEntry {
	if entry.LocationID == "" || entry.Date == "" {
		return entries
	}
	if entry.Type != domain.SalesForecast {
		entry.Type = domain.SalesActual
	}
	for i, existing := range entries {
		if existing.LocationID == entry.LocationID && existing.Date == entry.Date && existing.Type == entry.Type {
			entries[i].Amount = entry.Amount
			return entries
		}
	}
	if entry.ID == "" {
		entry.ID = newID()
	}
	return append(entries, entry)
}

// upsertRevenue keeps revenue rows unique on (subcontractorId, period).
func upsertRevenue(rows []domain.SubcontractorRevenue, row domain.SubcontractorRevenue, newID func() string) []domain.SubcontractorRevenue {
	if row.SubcontractorID == "" || row.Period == "" {
		return rows
	}
	for i, existing := range rows {
		if existing.SubcontractorID == row.SubcontractorID && existing.Period == row.Period {
			rows[i].Amount = row.Amount
			return rows
		}
	}
	if row.ID == "" {
		row.ID = newID()
	}
	return append(rows, row)
}

func subcontractorExists(doc Document, id string) bool {
	for _, s := range doc.Subcontractors {
		if s.ID == id {
			return true
		}
	}
	return false
}
