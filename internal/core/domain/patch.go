// internal/core/domain/patch.go
package domain

// ItemPatch carries the fields of a partial inventory-item update. A nil
// field means "leave unchanged"; there is no way to express an unknown
// attribute, so invalid patches fail at decode time instead of being
// silently ignored.
type ItemPatch struct {
	SKU      *string        `json:"sku,omitempty"`
	Name     *string        `json:"name,omitempty"`
	Category *ItemCategory  `json:"category,omitempty"`
	Quantity *int           `json:"quantity,omitempty"`
	Location *string        `json:"location,omitempty"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// Empty reports whether the patch changes nothing
func (p *ItemPatch) Empty() bool {
	return p.SKU == nil && p.Name == nil && p.Category == nil &&
		p.Quantity == nil && p.Location == nil && p.Metadata == nil
}

// Apply merges the present fields into the item. It does not touch
// timestamps or the version; the engine owns those.
func (p *ItemPatch) Apply(item *InventoryItem) {
	if p.SKU != nil {
		item.SKU = *p.SKU
	}
	if p.Name != nil {
		item.Name = *p.Name
	}
	if p.Category != nil {
		item.Category = *p.Category
	}
	if p.Quantity != nil {
		item.Quantity = *p.Quantity
	}
	if p.Location != nil {
		item.Location = *p.Location
	}
	if p.Metadata != nil {
		item.Metadata = p.Metadata
	}
}

// Fields returns the literal patch as a mapping, for the audit record
func (p *ItemPatch) Fields() map[string]any {
	out := map[string]any{}
	if p.SKU != nil {
		out["sku"] = *p.SKU
	}
	if p.Name != nil {
		out["name"] = *p.Name
	}
	if p.Category != nil {
		out["category"] = string(*p.Category)
	}
	if p.Quantity != nil {
		out["quantity"] = *p.Quantity
	}
	if p.Location != nil {
		out["location"] = *p.Location
	}
	if p.Metadata != nil {
		out["metadata"] = p.Metadata
	}
	return out
}

// DevicePatch carries the fields of a partial device update
type DevicePatch struct {
	Type            *DeviceType    `json:"device_type,omitempty"`
	Company         *string        `json:"company,omitempty"`
	AssetTag        *string        `json:"asset_tag,omitempty"`
	Serial          *string        `json:"serial,omitempty"`
	Model           *string        `json:"model,omitempty"`
	Status          *DeviceStatus  `json:"status,omitempty"`
	AssignedUserUPN *string        `json:"assigned_to_upn,omitempty"`
	AssignedUserID  *string        `json:"assigned_to_id,omitempty"`
	OS              *string        `json:"os,omitempty"`
	DirectoryID     *string        `json:"directory_id,omitempty"`
	Notes           map[string]any `json:"notes,omitempty"`
}

// Empty reports whether the patch changes nothing
func (p *DevicePatch) Empty() bool {
	return p.Type == nil && p.Company == nil && p.AssetTag == nil &&
		p.Serial == nil && p.Model == nil && p.Status == nil &&
		p.AssignedUserUPN == nil && p.AssignedUserID == nil &&
		p.OS == nil && p.DirectoryID == nil && p.Notes == nil
}

// Apply merges the present fields into the device
func (p *DevicePatch) Apply(d *Device) {
	if p.Type != nil {
		d.Type = *p.Type
	}
	if p.Company != nil {
		d.Company = *p.Company
	}
	if p.AssetTag != nil {
		d.AssetTag = *p.AssetTag
	}
	if p.Serial != nil {
		d.Serial = *p.Serial
	}
	if p.Model != nil {
		d.Model = *p.Model
	}
	if p.Status != nil {
		d.Status = *p.Status
	}
	if p.AssignedUserUPN != nil {
		d.AssignedUserUPN = *p.AssignedUserUPN
	}
	if p.AssignedUserID != nil {
		d.AssignedUserID = *p.AssignedUserID
	}
	if p.OS != nil {
		d.OS = *p.OS
	}
	if p.DirectoryID != nil {
		d.DirectoryID = *p.DirectoryID
	}
	if p.Notes != nil {
		d.Notes = p.Notes
	}
}

// Fields returns the literal patch as a mapping, for the audit record
func (p *DevicePatch) Fields() map[string]any {
	out := map[string]any{}
	if p.Type != nil {
		out["device_type"] = string(*p.Type)
	}
	if p.Company != nil {
		out["company"] = *p.Company
	}
	if p.AssetTag != nil {
		out["asset_tag"] = *p.AssetTag
	}
	if p.Serial != nil {
		out["serial"] = *p.Serial
	}
	if p.Model != nil {
		out["model"] = *p.Model
	}
	if p.Status != nil {
		out["status"] = string(*p.Status)
	}
	if p.AssignedUserUPN != nil {
		out["assigned_to_upn"] = *p.AssignedUserUPN
	}
	if p.AssignedUserID != nil {
		out["assigned_to_id"] = *p.AssignedUserID
	}
	if p.OS != nil {
		out["os"] = *p.OS
	}
	if p.DirectoryID != nil {
		out["directory_id"] = *p.DirectoryID
	}
	if p.Notes != nil {
		out["notes"] = p.Notes
	}
	return out
}
