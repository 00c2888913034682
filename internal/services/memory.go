package services

import (
	"fmt"
	"slices"
	"strings"
	"sync"
	"sync/atomic"

	"cms-mapper/internal/entity"
)

// MemoryStore keeps entities in maps. It is safe for concurrent use.
type MemoryStore struct {
	mu sync.RWMutex

	content      map[int]*entity.Content
	media        map[int]*entity.Media
	contentTypes map[int]*entity.ContentType
	dataTypes    map[int]*entity.DataType
	templates    map[int]*entity.Template
	users        map[int]*entity.User
	dictionary   map[string]*entity.DictionaryItem
	languages    []*entity.Language
	texts        map[string]string

	nextID atomic.Int64
}

// NewMemoryStore creates an empty store. Ids handed out by NextID start after firstID.
func NewMemoryStore(firstID int) *MemoryStore {
	s := &MemoryStore{
		content:      map[int]*entity.Content{},
		media:        map[int]*entity.Media{},
		contentTypes: map[int]*entity.ContentType{},
		dataTypes:    map[int]*entity.DataType{},
		templates:    map[int]*entity.Template{},
		users:        map[int]*entity.User{},
		dictionary:   map[string]*entity.DictionaryItem{},
		texts:        map[string]string{},
	}
	s.nextID.Store(int64(firstID))

	return s
}

// NextID returns a fresh id.
func (s *MemoryStore) NextID() int {
	return int(s.nextID.Add(1))
}

// Sequence is an IdentitySource counting up from a starting id.
type Sequence struct {
	last atomic.Int64
}

// NewSequence returns a sequence whose first id is after.
func NewSequence(after int) *Sequence {
	s := &Sequence{}
	s.last.Store(int64(after))

	return s
}

// NextID returns a fresh id.
func (s *Sequence) NextID() int {
	return int(s.last.Add(1))
}

func (s *MemoryStore) bump(id int) {
	for {
		cur := s.nextID.Load()
		if int64(id) <= cur || s.nextID.CompareAndSwap(cur, int64(id)) {
			return
		}
	}
}

// AddContent stores documents.
func (s *MemoryStore) AddContent(items ...*entity.Content) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range items {
		s.content[c.ID] = c
		s.bump(c.ID)
	}
}

// AddMedia stores media items.
func (s *MemoryStore) AddMedia(items ...*entity.Media) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, m := range items {
		s.media[m.ID] = m
		s.bump(m.ID)
	}
}

// AddContentTypes stores content types of any kind.
func (s *MemoryStore) AddContentTypes(types ...*entity.ContentType) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, ct := range types {
		s.contentTypes[ct.ID] = ct
		s.bump(ct.ID)
	}
}

// AddDataTypes stores data types.
func (s *MemoryStore) AddDataTypes(types ...*entity.DataType) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, dt := range types {
		s.dataTypes[dt.ID] = dt
		s.bump(dt.ID)
	}
}

// AddTemplates stores templates.
func (s *MemoryStore) AddTemplates(templates ...*entity.Template) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range templates {
		s.templates[t.ID] = t
		s.bump(t.ID)
	}
}

// AddUsers stores users.
func (s *MemoryStore) AddUsers(users ...*entity.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range users {
		s.users[u.ID] = u
	}
}

// AddDictionaryItems stores dictionary items by item key.
func (s *MemoryStore) AddDictionaryItems(items ...*entity.DictionaryItem) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, d := range items {
		s.dictionary[strings.ToLower(d.ItemKey)] = d
	}
}

// SetLanguages replaces the configured languages.
func (s *MemoryStore) SetLanguages(languages ...*entity.Language) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.languages = languages
}

// SetText registers a localized UI string. An empty culture registers the fallback.
func (s *MemoryStore) SetText(area, alias, culture, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.texts[textKey(area, alias, culture)] = text
}

func textKey(area, alias, culture string) string {
	return strings.ToLower(area + "/" + alias + "/" + culture)
}

// GetContent implements ContentService.
func (s *MemoryStore) GetContent(id int) (*entity.Content, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.content[id]
	if !ok {
		return nil, fmt.Errorf("content %d: %w", id, ErrNotFound)
	}

	return c, nil
}

// GetMedia implements ContentService.
func (s *MemoryStore) GetMedia(id int) (*entity.Media, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m, ok := s.media[id]
	if !ok {
		return nil, fmt.Errorf("media %d: %w", id, ErrNotFound)
	}

	return m, nil
}

// GetContentType implements ContentTypeService.
func (s *MemoryStore) GetContentType(id int) (*entity.ContentType, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ct, ok := s.contentTypes[id]
	if !ok {
		return nil, fmt.Errorf("content type %d: %w", id, ErrNotFound)
	}

	return ct, nil
}

// GetContentTypeByAlias implements ContentTypeService.
func (s *MemoryStore) GetContentTypeByAlias(kind entity.ContentKind, alias string) (*entity.ContentType, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, ct := range s.contentTypes {
		if ct.Kind == kind && strings.EqualFold(ct.Alias, alias) {
			return ct, nil
		}
	}

	return nil, fmt.Errorf("%s type %q: %w", kind, alias, ErrNotFound)
}

// GetAllContentTypes implements ContentTypeService. Types are ordered by id.
func (s *MemoryStore) GetAllContentTypes(kind entity.ContentKind) ([]*entity.ContentType, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*entity.ContentType

	for _, ct := range s.contentTypes {
		if ct.Kind == kind {
			result = append(result, ct)
		}
	}

	slices.SortFunc(result, func(a, b *entity.ContentType) int { return a.ID - b.ID })

	return result, nil
}

// HasContainerInPath implements ContentTypeService.
func (s *MemoryStore) HasContainerInPath(ids []int) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range ids {
		if c, ok := s.content[id]; ok && c.ContentType != nil && c.ContentType.IsContainer {
			return true, nil
		}

		if m, ok := s.media[id]; ok && m.ContentType != nil && m.ContentType.IsContainer {
			return true, nil
		}
	}

	return false, nil
}

// GetDataType implements DataTypeService.
func (s *MemoryStore) GetDataType(id int) (*entity.DataType, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	dt, ok := s.dataTypes[id]
	if !ok {
		return nil, fmt.Errorf("data type %d: %w", id, ErrNotFound)
	}

	return dt, nil
}

// GetDataTypeByName implements DataTypeService.
func (s *MemoryStore) GetDataTypeByName(name string) (*entity.DataType, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, dt := range s.dataTypes {
		if dt.Name == name {
			return dt, nil
		}
	}

	return nil, fmt.Errorf("data type %q: %w", name, ErrNotFound)
}

// GetTemplate implements FileService.
func (s *MemoryStore) GetTemplate(id int) (*entity.Template, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.templates[id]
	if !ok {
		return nil, fmt.Errorf("template %d: %w", id, ErrNotFound)
	}

	return t, nil
}

// GetTemplateByAlias implements FileService.
func (s *MemoryStore) GetTemplateByAlias(alias string) (*entity.Template, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, t := range s.templates {
		if strings.EqualFold(t.Alias, alias) {
			return t, nil
		}
	}

	return nil, fmt.Errorf("template %q: %w", alias, ErrNotFound)
}

// GetUser implements UserService.
func (s *MemoryStore) GetUser(id int) (*entity.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, fmt.Errorf("user %d: %w", id, ErrNotFound)
	}

	return u, nil
}

// GetPermissionsForPath implements UserService with group default
// permissions. Users outside their start nodes get none.
func (s *MemoryStore) GetPermissionsForPath(user *entity.User, path string) ([]string, error) {
	if user == nil {
		return nil, nil
	}

	ids := entity.PathIDs(path)
	inside := false

	for _, start := range user.CalculateContentStartNodeIDs() {
		if start == entity.RootID || slices.Contains(ids, start) {
			inside = true
			break
		}
	}

	if !inside {
		return nil, nil
	}

	var result []string

	for _, g := range user.Groups {
		for _, p := range g.Permissions {
			if !slices.Contains(result, p) {
				result = append(result, p)
			}
		}
	}

	slices.Sort(result)

	return result, nil
}

// Localize implements LocalizedTextService. Missing texts come back as "[alias]".
func (s *MemoryStore) Localize(area, alias, culture string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if t, ok := s.texts[textKey(area, alias, culture)]; ok {
		return t
	}

	if t, ok := s.texts[textKey(area, alias, "")]; ok {
		return t
	}

	return "[" + alias + "]"
}

// TranslateDictionary implements LocalizedTextService.
func (s *MemoryStore) TranslateDictionary(text, culture string) string {
	if !strings.HasPrefix(text, "#") || len(text) == 1 {
		return text
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.dictionary[strings.ToLower(text[1:])]
	if !ok {
		return "[" + text[1:] + "]"
	}

	for _, lang := range s.languages {
		if !strings.EqualFold(lang.IsoCode, culture) {
			continue
		}

		if v, ok := item.Translation(lang.ID); ok && v != "" {
			return v
		}
	}

	return "[" + text[1:] + "]"
}

// GetAllLanguages implements LanguageService.
func (s *MemoryStore) GetAllLanguages() []*entity.Language {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.languages)
}

// GetDefaultLanguageIsoCode implements LanguageService.
func (s *MemoryStore) GetDefaultLanguageIsoCode() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, l := range s.languages {
		if l.IsDefault {
			return l.IsoCode
		}
	}

	if len(s.languages) > 0 {
		return s.languages[0].IsoCode
	}

	return ""
}

var (
	_ ContentService       = (*MemoryStore)(nil)
	_ ContentTypeService   = (*MemoryStore)(nil)
	_ DataTypeService      = (*MemoryStore)(nil)
	_ FileService          = (*MemoryStore)(nil)
	_ UserService          = (*MemoryStore)(nil)
	_ LocalizedTextService = (*MemoryStore)(nil)
	_ LanguageService      = (*MemoryStore)(nil)
	_ IdentitySource       = (*MemoryStore)(nil)
	_ IdentitySource       = (*Sequence)(nil)
)
