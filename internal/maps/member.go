package maps

import (
	"fmt"

	"cms-mapper/internal/composition"
	"cms-mapper/internal/diagnostic"
	"cms-mapper/internal/editing"
	"cms-mapper/internal/entity"
	"cms-mapper/internal/mapping"
)

// Membership tab identity and the aliases of its properties.
const (
	MembershipTabID    = -1001
	MembershipTabAlias = "_umb_membership"

	MemberLoginAlias    = "_umb_login"
	MemberEmailAlias    = "_umb_email"
	MemberApprovedAlias = "_umb_approved"
	MemberLockedAlias   = "_umb_lockedOut"
	MemberGroupsAlias   = "_umb_membergroup"
)

var (
	memberDisplayPair = pairName[*entity.Member, editing.MemberDisplay]()
	memberBasicPair   = pairName[*entity.Member, editing.MemberBasic]()
)

func (m *mapper) registerMember(b *mapping.Builder) {
	mapping.Define(b, m.mapMemberDisplay)
	mapping.Define(b, m.mapMemberBasic)
}

// sensitiveAccess reports whether the context grants access to sensitive member data.
func sensitiveAccess(ctx *mapping.Context) bool {
	granted, _ := mapping.ItemAs[bool](ctx, ItemSensitiveAccess)
	return granted
}

func isSensitive(ct *entity.ContentType, owner *entity.ContentType, alias string) bool {
	for _, t := range []*entity.ContentType{owner, ct} {
		if t == nil {
			continue
		}

		if a, ok := t.MemberAccess[alias]; ok {
			return a.Sensitive
		}
	}

	return false
}

func (m *mapper) mapMemberDisplay(src *entity.Member, dst *editing.MemberDisplay, ctx *mapping.Context) error {
	ct := src.ContentType
	granted := sensitiveAccess(ctx)

	tabs, err := m.tabs(&src.ContentBase, ctx, func(p *composition.Property, d *editing.ContentPropertyDisplay) {
		if !isSensitive(ct, p.Owner, p.Type.Alias) {
			return
		}

		d.IsSensitive = true

		if granted {
			return
		}

		d.Value = nil
		d.Readonly = true
		d.View = m.svc.Editors.Label().View
		ctx.Info(diagnostic.CodeSensitiveValue, "sensitive value hidden", memberDisplayPair, p.Type.Alias)
	})
	if err != nil {
		return err
	}

	tabs = append(tabs, m.membershipTab(src, ctx))

	dst.ID = src.ID
	dst.Key = src.Key
	dst.Udi = entity.Udi(entity.KindMember.ContentUdiEntityType(), src.Key)
	dst.Name = src.Name
	dst.Icon = ct.Icon
	dst.Username = src.Username
	dst.Email = src.Email
	dst.IsApproved = src.IsApproved
	dst.IsLockedOut = src.IsLockedOut
	dst.MemberGroups = src.Groups
	dst.CreateDate = src.CreateDate
	dst.UpdateDate = src.UpdateDate
	dst.Owner = m.profile(src.CreatorID)
	dst.ContentTypeID = ct.ID
	dst.ContentTypeAlias = ct.Alias
	dst.ContentTypeName = m.translate(ct.Name, ctx.Culture())
	dst.Tabs = tabs

	return nil
}

// membershipTab renders the login fields of a member.
func (m *mapper) membershipTab(src *entity.Member, ctx *mapping.Context) *editing.Tab {
	culture := ctx.Culture()

	prop := func(alias, labelKey, editorAlias string, value any, mandatory bool) *editing.ContentPropertyDisplay {
		editor, ok := m.svc.Editors.Get(editorAlias)
		if !ok {
			editor = m.svc.Editors.Label()
		}

		return &editing.ContentPropertyDisplay{
			ContentPropertyBasic: editing.ContentPropertyBasic{
				Alias:  alias,
				Value:  value,
				Editor: editor.Alias,
			},
			Label:      m.localize("user", labelKey, culture),
			View:       editor.View,
			Config:     editor.ValueEditorConfig(nil),
			HideLabel:  editor.HideLabel,
			Validation: editing.PropertyValidation{Mandatory: mandatory},
		}
	}

	return &editing.Tab{
		ID:    MembershipTabID,
		Alias: MembershipTabAlias,
		Label: m.localize("content", "membership", culture),
		Type:  entity.GroupTypeTab.String(),
		Properties: []*editing.ContentPropertyDisplay{
			prop(MemberLoginAlias, "login", "Umbraco.TextBox", src.Username, true),
			prop(MemberEmailAlias, "email", "Umbraco.EmailAddress", src.Email, true),
			prop(MemberApprovedAlias, "isApproved", "Umbraco.TrueFalse", src.IsApproved, false),
			prop(MemberLockedAlias, "isLockedOut", "Umbraco.TrueFalse", src.IsLockedOut, false),
			prop(MemberGroupsAlias, "memberGroups", "Umbraco.Label", src.Groups, false),
		},
	}
}

func (m *mapper) mapMemberBasic(src *entity.Member, dst *editing.MemberBasic, ctx *mapping.Context) error {
	ct := src.ContentType
	granted := sensitiveAccess(ctx)

	props, err := mapping.MapSlice[*entity.Property, editing.ContentPropertyBasic](ctx, properties(&src.ContentBase, ctx))
	if err != nil {
		return err
	}

	for _, p := range props {
		if !isSensitive(ct, nil, p.Alias) && !inheritedSensitive(ct, p.Alias) {
			continue
		}

		p.IsSensitive = true

		if !granted {
			p.Value = nil
			p.Readonly = true
			ctx.Info(diagnostic.CodeSensitiveValue, fmt.Sprintf("sensitive value of %q hidden", p.Alias), memberBasicPair, p.Alias)
		}
	}

	dst.ID = src.ID
	dst.Key = src.Key
	dst.Udi = entity.Udi(entity.KindMember.ContentUdiEntityType(), src.Key)
	dst.Name = src.Name
	dst.Icon = ct.Icon
	dst.Username = src.Username
	dst.Email = src.Email
	dst.IsApproved = src.IsApproved
	dst.IsLockedOut = src.IsLockedOut
	dst.CreateDate = src.CreateDate
	dst.UpdateDate = src.UpdateDate
	dst.ContentTypeAlias = ct.Alias
	dst.Properties = props

	return nil
}

func inheritedSensitive(ct *entity.ContentType, alias string) bool {
	for _, a := range ct.Ancestors() {
		if access, ok := a.MemberAccess[alias]; ok {
			return access.Sensitive
		}
	}

	return false
}
