package core

import (
	"shiftcore/pkg/domain"
)

const (
	defaultGeofenceRadius     = 150
	defaultLaborBudgetWarning = 25
	defaultLaborBudgetMax     = 30
)

func (r *Reducer) reduceLocations(doc Document, action Action) Document {
	switch action.Type {
	case domain.ActionAddLocation:
		loc, ok := decode[domain.Location](action.Payload)
		if !ok {
			return doc
		}
		loc.ID = r.fillID(loc.ID)
		if loc.GeofenceRadius == 0 {
			loc.GeofenceRadius = defaultGeofenceRadius
		}
		if loc.LaborBudgetWarning == 0 {
			loc.LaborBudgetWarning = defaultLaborBudgetWarning
		}
		if loc.LaborBudgetMax == 0 {
			loc.LaborBudgetMax = defaultLaborBudgetMax
		}
		doc.Locations = append(doc.Locations, loc)
	case domain.ActionUpdateLocation:
		patch, ok := decode[domain.Patch](action.Payload)
		if !ok {
			return doc
		}
		doc.Locations = patchByID(doc.Locations, patch)
	case domain.ActionDeleteLocation:
		target, ok := decode[domain.Target](action.Payload)
		if !ok {
			return doc
		}
		doc = deleteLocation(doc, target.ID)
	case domain.ActionSetCurrentLocation:
		target, ok := decode[domain.Target](action.Payload)
		if !ok {
			return doc
		}
		if _, found := doc.FindLocation(target.ID); found {
			doc.CurrentLocationID = target.ID
		}
	case domain.ActionAddPosition:
		pos, ok := decode[domain.Position](action.Payload)
		if !ok {
			return doc
		}
		pos.ID = r.fillID(pos.ID)
		doc.Positions = append(doc.Positions, pos)
	case domain.ActionUpdatePosition:
		patch, ok := decode[domain.Patch](action.Payload)
		if !ok {
			return doc
		}
		doc.Positions = patchByID(doc.Positions, patch)
	case domain.ActionDeletePosition:
		target, ok := decode[domain.Target](action.Payload)
		if !ok {
			return doc
		}
		doc = deletePosition(doc, target.ID)
	}
	return doc
}

func (r *Reducer) reduceShifts(doc Document, action Action) Document {
	switch action.Type {
	case domain.ActionAddShift:
		shift, ok := decode[domain.Shift](action.Payload)
		if !ok {
			return doc
		}
		shift.ID = r.fillID(shift.ID)
		if shift.EmployeeID == "" {
			shift.EmployeeID = domain.OpenShiftEmployee
		}
		if shift.Status != domain.ShiftStatusPublished {
			shift.Status = domain.ShiftStatusDraft
		}
		doc.Shifts = append(doc.Shifts, shift)
	case domain.ActionUpdateShift:
		patch, ok := decode[domain.Patch](action.Payload)
		if !ok {
			return doc
		}
		doc.Shifts = patchByID(doc.Shifts, patch)
	case domain.ActionDeleteShift:
		target, ok := decode[domain.Target](action.Payload)
		if !ok {
			return doc
		}
		doc = deleteShift(doc, target.ID)
	case domain.ActionPublishShifts:
		payload, ok := decode[domain.PublishShiftsPayload](action.Payload)
		if !ok {
			return doc
		}
		for _, id := range payload.ShiftIDs {
			doc.Shifts = updateByID(doc.Shifts, id, func(s domain.Shift) domain.Shift {
				s.Status = domain.ShiftStatusPublished
				return s
			})
		}
	case domain.ActionAddShiftBid:
		bid, ok := decode[domain.ShiftBid](action.Payload)
		if !ok {
			return doc
		}
		shift, found := doc.FindShift(bid.ShiftID)
		if !found || shift.EmployeeID != domain.OpenShiftEmployee {
			return doc
		}
		bid.ID = r.fillID(bid.ID)
		bid.Status = domain.BidPending
		if bid.CreatedAt == "" {
			bid.CreatedAt = r.timestamp()
		}
		doc.ShiftBids = append(doc.ShiftBids, bid)
	case domain.ActionApproveShiftBid:
		target, ok := decode[domain.Target](action.Payload)
		if !ok {
			return doc
		}
		doc = approveShiftBid(doc, target.ID)
	case domain.ActionDenyShiftBid:
		target, ok := decode[domain.Target](action.Payload)
		if !ok {
			return doc
		}
		doc.ShiftBids = updateByID(doc.ShiftBids, target.ID, func(b domain.ShiftBid) domain.ShiftBid {
			if b.Status == domain.BidPending {
				b.Status = domain.BidDenied
			}
			return b
		})
	case domain.ActionAddShiftSwap:
		swap, ok := decode[domain.ShiftSwap](action.Payload)
		if !ok {
			return doc
		}
		if _, found := doc.FindShift(swap.ShiftID); !found {
			return doc
		}
		swap.ID = r.fillID(swap.ID)
		swap.Status = domain.SwapOpen
		swap.ClaimedByID = ""
		if swap.CreatedAt == "" {
			swap.CreatedAt = r.timestamp()
		}
		doc.ShiftSwaps = append(doc.ShiftSwaps, swap)
	case domain.ActionClaimShiftSwap:
		payload, ok := decode[domain.ClaimShiftSwapPayload](action.Payload)
		if !ok {
			return doc
		}
		doc.ShiftSwaps = updateByID(doc.ShiftSwaps, payload.ID, func(s domain.ShiftSwap) domain.ShiftSwap {
			if s.Status != domain.SwapOpen || payload.EmployeeID == "" || payload.EmployeeID == s.RequesterID {
				return s
			}
			s.ClaimedByID = payload.EmployeeID
			s.Status = domain.SwapClaimed
			return s
		})
	case domain.ActionApproveShiftSwap:
		target, ok := decode[domain.Target](action.Payload)
		if !ok {
			return doc
		}
		doc = approveShiftSwap(doc, target.ID)
	case domain.ActionDenyShiftSwap:
		target, ok := decode[domain.Target](action.Payload)
		if !ok {
			return doc
		}
		doc.ShiftSwaps = updateByID(doc.ShiftSwaps, target.ID, func(s domain.ShiftSwap) domain.ShiftSwap {
			if s.Status == domain.SwapClaimed {
				s.Status = domain.SwapDenied
			}
			return s
		})
	case domain.ActionCancelShiftSwap:
		target, ok := decode[domain.Target](action.Payload)
		if !ok {
			return doc
		}
		doc.ShiftSwaps = updateByID(doc.ShiftSwaps, target.ID, func(s domain.ShiftSwap) domain.ShiftSwap {
			if s.Status == domain.SwapOpen || s.Status == domain.SwapClaimed {
				s.Status = domain.SwapCancelled
			}
			return s
		})
	}
	return doc
}

// approveShiftBid assigns the bid's shift to the bidder and denies every
// other pending bid on the same shift.
func approveShiftBid(doc Document, bidID string) Document {
	var approved domain.ShiftBid
	found := false
	for _, b := range doc.ShiftBids {
		if b.ID == bidID && b.Status == domain.BidPending {
			approved = b
			found = true
			break
		}
	}
	if !found {
		return doc
	}
	if _, exists := doc.FindShift(approved.ShiftID); !exists {
		return doc
	}
	doc.Shifts = updateByID(doc.Shifts, approved.ShiftID, func(s domain.Shift) domain.Shift {
		s.EmployeeID = approved.EmployeeID
		return s
	})
	for i, b := range doc.ShiftBids {
		switch {
		case b.ID == bidID:
			doc.ShiftBids[i].Status = domain.BidApproved
		case b.ShiftID == approved.ShiftID && b.Status == domain.BidPending:
			doc.ShiftBids[i].Status = domain.BidDenied
		}
	}
	return doc
}

// approveShiftSwap reassigns the underlying shift to the claimant in the same
// transition that marks the swap approved. Only claimed swaps are eligible.
func approveShiftSwap(doc Document, swapID string) Document {
	var swap domain.ShiftSwap
	found := false
	for _, s := range doc.ShiftSwaps {
		if s.ID == swapID && s.Status == domain.SwapClaimed && s.ClaimedByID != "" {
			swap = s
			found = true
			break
		}
	}
	if !found {
		return doc
	}
	if _, exists := doc.FindShift(swap.ShiftID); !exists {
		return doc
	}
	doc.Shifts = updateByID(doc.Shifts, swap.ShiftID, func(s domain.Shift) domain.Shift {
		s.EmployeeID = swap.ClaimedByID
		return s
	})
	doc.ShiftSwaps = updateByID(doc.ShiftSwaps, swapID, func(s domain.ShiftSwap) domain.ShiftSwap {
		s.Status = domain.SwapApproved
		return s
	})
	return doc
}
