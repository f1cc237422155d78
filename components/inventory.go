package components

import "github.com/yohamta/donburi"

// ItemSlot is one hotbar slot.
type ItemSlot struct {
	ItemType string
	Count    int
}

// InventoryData is the player's food hotbar.
type InventoryData struct {
	Slots  []ItemSlot
	Active int
}

var Inventory = donburi.NewComponentType[InventoryData]()

// ActiveItem returns the selected slot's item type, or "" when the slot
// is empty.
func (inv *InventoryData) ActiveItem() string {
	if inv.Active < 0 || inv.Active >= len(inv.Slots) {
		return ""
	}
	slot := inv.Slots[inv.Active]
	if slot.Count <= 0 {
		return ""
	}
	return slot.ItemType
}

// ConsumeActive removes one item from the selected slot. Returns false
// if the slot was already empty.
func (inv *InventoryData) ConsumeActive() bool {
	if inv.Active < 0 || inv.Active >= len(inv.Slots) {
		return false
	}
	slot := &inv.Slots[inv.Active]
	if slot.Count <= 0 {
		return false
	}
	slot.Count--
	if slot.Count == 0 {
		slot.ItemType = ""
	}
	return true
}

// AddItem places an item into a matching or empty slot. Returns false
// when the hotbar is full.
func (inv *InventoryData) AddItem(itemType string) bool {
	for i := range inv.Slots {
		if inv.Slots[i].ItemType == itemType && inv.Slots[i].Count > 0 {
			inv.Slots[i].Count++
			return true
		}
	}
	for i := range inv.Slots {
		if inv.Slots[i].Count <= 0 {
			inv.Slots[i] = ItemSlot{ItemType: itemType, Count: 1}
			return true
		}
	}
	return false
}

// Cycle moves the active slot by delta, wrapping.
func (inv *InventoryData) Cycle(delta int) {
	if len(inv.Slots) == 0 {
		return
	}
	inv.Active = ((inv.Active+delta)%len(inv.Slots) + len(inv.Slots)) % len(inv.Slots)
}
