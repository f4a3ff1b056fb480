package entities

// ItemType is the equipment category of an item
type ItemType string

// Item types
const (
	ItemTypeWeapon    ItemType = "weapon"
	ItemTypeArmor     ItemType = "armor"
	ItemTypeAccessory ItemType = "accessory"
	ItemTypeCosmetic  ItemType = "cosmetic"
)

// Slot returns the equipment slot the type occupies. Anything that is not a
// weapon or armor goes to the accessory slot.
func (t ItemType) Slot() Slot {
	switch t {
	case ItemTypeWeapon:
		return SlotWeapon
	case ItemTypeArmor:
		return SlotArmor
	default:
		return SlotAccessory
	}
}

// Rarity is the loot tier of an item
type Rarity string

// Rarities from worst to best
const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// Item is immutable once generated. Equipping moves it between the
// inventory and a slot without touching its fields.
type Item struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Type        ItemType   `json:"type"`
	Rarity      Rarity     `json:"rarity"`
	StatBonus   *StatBonus `json:"statBonus,omitempty"`
	Description string     `json:"description"`
	Icon        string     `json:"icon"`
}

// Clone returns a deep copy of the item
func (i *Item) Clone() *Item {
	if i == nil {
		return nil
	}
	out := *i
	if i.StatBonus != nil {
		b := *i.StatBonus
		out.StatBonus = &b
	}
	return &out
}

// Slot is an equipment slot
type Slot string

// Equipment slots
const (
	SlotWeapon    Slot = "weapon"
	SlotArmor     Slot = "armor"
	SlotAccessory Slot = "accessory"
)

// Slots lists every equipment slot
var Slots = []Slot{SlotWeapon, SlotArmor, SlotAccessory}

// Valid reports whether s names a known slot
func (s Slot) Valid() bool {
	return s == SlotWeapon || s == SlotArmor || s == SlotAccessory
}

// EquippedItems holds at most one item per slot
type EquippedItems struct {
	Weapon    *Item `json:"weapon,omitempty"`
	Armor     *Item `json:"armor,omitempty"`
	Accessory *Item `json:"accessory,omitempty"`
}

// Get returns the item in slot, or nil
func (e *EquippedItems) Get(slot Slot) *Item {
	switch slot {
	case SlotWeapon:
		return e.Weapon
	case SlotArmor:
		return e.Armor
	case SlotAccessory:
		return e.Accessory
	default:
		return nil
	}
}

// Set places item in slot. A nil item empties the slot.
func (e *EquippedItems) Set(slot Slot, item *Item) {
	switch slot {
	case SlotWeapon:
		e.Weapon = item
	case SlotArmor:
		e.Armor = item
	case SlotAccessory:
		e.Accessory = item
	}
}

// Items returns the equipped items in slot order, skipping empty slots
func (e *EquippedItems) Items() []*Item {
	out := make([]*Item, 0, len(Slots))
	for _, slot := range Slots {
		if item := e.Get(slot); item != nil {
			out = append(out, item)
		}
	}
	return out
}

// Clone returns a deep copy
func (e EquippedItems) Clone() EquippedItems {
	return EquippedItems{
		Weapon:    e.Weapon.Clone(),
		Armor:     e.Armor.Clone(),
		Accessory: e.Accessory.Clone(),
	}
}
