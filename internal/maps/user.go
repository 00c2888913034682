package maps

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"

	"cms-mapper/internal/diagnostic"
	"cms-mapper/internal/editing"
	"cms-mapper/internal/entity"
	"cms-mapper/internal/mapping"
)

const (
	userGroupIcon  = "icon-users"
	startRootIcon  = "icon-folder"
	userUdiType    = "user"
	sectionContent = "content"
	sectionMedia   = "media"
)

var (
	userDisplayPair      = pairName[*entity.User, editing.UserDisplay]()
	userGroupDisplayPair = pairName[*entity.UserGroup, editing.UserGroupBasic]()
)

func (m *mapper) registerUsers(b *mapping.Builder) {
	mapping.Define(b, m.mapUserBasic)
	mapping.Define(b, m.mapUserDisplay)
	mapping.Define(b, m.mapUserGroupBasic)
	mapping.Define(b, func(src *entity.User, dst *editing.UserProfile, _ *mapping.Context) error {
		dst.UserID = src.ID
		dst.Name = src.Name

		return nil
	})
}

// emailHash is the hex md5 of the trimmed lower-cased address, as avatar
// services expect it.
func emailHash(email string) string {
	sum := md5.Sum([]byte(strings.ToLower(strings.TrimSpace(email))))
	return hex.EncodeToString(sum[:])
}

func optionalTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}

	return &t
}

func (m *mapper) mapUserBasic(src *entity.User, dst *editing.UserBasic, ctx *mapping.Context) error {
	dst.ID = src.ID
	dst.Key = src.Key
	dst.Udi = entity.Udi(userUdiType, src.Key)
	dst.Name = src.Name
	dst.Username = src.Username
	dst.Email = src.Email
	dst.EmailHash = emailHash(src.Email)
	dst.Culture = src.Language
	dst.UserState = string(src.State)
	dst.LastLoginDate = optionalTime(src.LastLoginDate)
	dst.ParentID = entity.RootID
	dst.Path = strconv.Itoa(entity.RootID) + "," + strconv.Itoa(src.ID)

	if dst.UserState == "" {
		dst.UserState = string(entity.UserStateActive)
	}

	groups, err := mapping.MapSlice[*entity.UserGroup, editing.UserGroupBasic](ctx, src.Groups)
	if err != nil {
		return err
	}

	dst.UserGroups = groups

	return nil
}

func (m *mapper) mapUserDisplay(src *entity.User, dst *editing.UserDisplay, ctx *mapping.Context) error {
	if err := m.mapUserBasic(src, &dst.UserBasic, ctx); err != nil {
		return err
	}

	dst.CreateDate = src.CreateDate
	dst.UpdateDate = src.UpdateDate
	dst.LastLockoutDate = optionalTime(src.LastLockoutDate)
	dst.LastPasswordChangeDate = optionalTime(src.LastPasswordChangeDate)
	dst.FailedPasswordAttempts = src.FailedPasswordAttempts
	dst.AllowedSections = src.AllowedSections()

	dst.StartContentIDs = m.startNodes(src.StartContentIDs, sectionContent, ctx)
	dst.StartMediaIDs = m.startNodes(src.StartMediaIDs, sectionMedia, ctx)
	dst.CalculatedStartContentIDs = m.startNodes(src.CalculateContentStartNodeIDs(), sectionContent, ctx)
	dst.CalculatedStartMediaIDs = m.startNodes(src.CalculateMediaStartNodeIDs(), sectionMedia, ctx)

	langs, _ := m.languages()

	dst.AvailableCultures = make(map[string]string, len(langs))
	for _, l := range langs {
		dst.AvailableCultures[l.IsoCode] = l.CultureName
	}

	return nil
}

// startNodes renders start node ids as entities. The root renders with its
// localized name; ids that no longer resolve are left out.
func (m *mapper) startNodes(ids []int, section string, ctx *mapping.Context) []*editing.EntityBasic {
	result := make([]*editing.EntityBasic, 0, len(ids))

	for _, id := range ids {
		if e := m.startNode(id, section, ctx); e != nil {
			result = append(result, e)
		}
	}

	return result
}

func (m *mapper) startNode(id int, section string, ctx *mapping.Context) *editing.EntityBasic {
	if id == entity.RootID {
		return &editing.EntityBasic{
			ID:       entity.RootID,
			Name:     m.localize(section, section+"Root", ctx.Culture()),
			Icon:     startRootIcon,
			ParentID: entity.RootID,
			Path:     strconv.Itoa(entity.RootID),
		}
	}

	if m.svc.Content == nil {
		return nil
	}

	var (
		base    *entity.ContentBase
		udiType string
	)

	switch section {
	case sectionMedia:
		media, err := m.svc.Content.GetMedia(id)
		if err == nil {
			base, udiType = &media.ContentBase, "media"
		}
	default:
		content, err := m.svc.Content.GetContent(id)
		if err == nil {
			base, udiType = &content.ContentBase, "document"
		}
	}

	if base == nil {
		ctx.Warn(diagnostic.CodeStartNodeMissing,
			fmt.Sprintf("%s start node %d not found", section, id), userDisplayPair, section)

		return nil
	}

	return contentEntity(base, udiType)
}

func (m *mapper) mapUserGroupBasic(src *entity.UserGroup, dst *editing.UserGroupBasic, ctx *mapping.Context) error {
	dst.ID = src.ID
	dst.Key = src.Key
	dst.Alias = src.Alias
	dst.Name = m.translate(src.Name, ctx.Culture())
	dst.Icon = src.Icon
	dst.Sections = append([]string{}, src.AllowedSections...)
	dst.UserCount = src.UserCount

	if dst.Icon == "" {
		dst.Icon = userGroupIcon
	}

	if src.StartContentID != nil {
		dst.StartContent = m.startNode(*src.StartContentID, sectionContent, ctx)
	}

	if src.StartMediaID != nil {
		dst.StartMedia = m.startNode(*src.StartMediaID, sectionMedia, ctx)
	}

	langs, _ := m.languages()
	dst.Languages = make([]*editing.LanguageDisplay, 0, len(src.AllowedLanguages))

	for _, id := range src.AllowedLanguages {
		var found *entity.Language

		for _, l := range langs {
			if l.ID == id {
				found = l
				break
			}
		}

		if found == nil {
			ctx.Warn(diagnostic.CodeUnknownLanguage,
				fmt.Sprintf("language %d of group %q is not configured", id, src.Alias), userGroupDisplayPair, "languages")

			continue
		}

		dst.Languages = append(dst.Languages, languageDisplay(found))
	}

	return nil
}
