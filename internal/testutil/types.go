// Package testutil provides shared interfaces, implementations, and
// constructors for exercising the container in tests. Every implementation
// carries a uuid so tests can tell fresh instances from shared ones.
package testutil

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Common test errors
var (
	ErrTest        = errors.New("test error")
	ErrConstructor = errors.New("constructor error")
)

// Logger is a leaf service with no dependencies.
type Logger interface {
	Log(msg string)
	Logs() []string
	InstanceID() string
}

// ConsoleLogger implements Logger.
type ConsoleLogger struct {
	id   string
	logs []string
}

func NewConsoleLogger() *ConsoleLogger {
	return &ConsoleLogger{id: uuid.NewString()}
}

func (l *ConsoleLogger) Log(msg string) {
	l.logs = append(l.logs, msg)
}

func (l *ConsoleLogger) Logs() []string {
	out := make([]string, len(l.logs))
	copy(out, l.logs)
	return out
}

func (l *ConsoleLogger) InstanceID() string {
	return l.id
}

// Database depends on a Logger.
type Database interface {
	Query(q string) string
	Logger() Logger
	InstanceID() string
}

// MemoryDatabase implements Database.
type MemoryDatabase struct {
	id     string
	logger Logger
}

func NewMemoryDatabase(logger Logger) *MemoryDatabase {
	return &MemoryDatabase{id: uuid.NewString(), logger: logger}
}

// NewFailingDatabase always reports ErrConstructor.
func NewFailingDatabase(_ Logger) (*MemoryDatabase, error) {
	return nil, ErrConstructor
}

func (d *MemoryDatabase) Query(q string) string {
	if d.logger != nil {
		d.logger.Log("query: " + q)
	}
	return fmt.Sprintf("rows for %q", q)
}

func (d *MemoryDatabase) Logger() Logger {
	return d.logger
}

func (d *MemoryDatabase) InstanceID() string {
	return d.id
}

// Cache is a second leaf service.
type Cache interface {
	Get(key string) (string, bool)
	Set(key, value string)
	InstanceID() string
}

// MapCache implements Cache.
type MapCache struct {
	id   string
	data map[string]string
}

func NewMapCache() *MapCache {
	return &MapCache{id: uuid.NewString(), data: make(map[string]string)}
}

// NewPanickingCache panics during construction.
func NewPanickingCache() *MapCache {
	panic("cache constructor panicked")
}

func (c *MapCache) Get(key string) (string, bool) {
	v, ok := c.data[key]
	return v, ok
}

func (c *MapCache) Set(key, value string) {
	c.data[key] = value
}

func (c *MapCache) InstanceID() string {
	return c.id
}

// UserService depends on a Database and a Cache, in that order.
type UserService interface {
	User(id int) string
	DB() Database
	Cache() Cache
	InstanceID() string
}

// DefaultUserService implements UserService.
type DefaultUserService struct {
	id    string
	db    Database
	cache Cache
}

func NewUserService(db Database, cache Cache) *DefaultUserService {
	return &DefaultUserService{id: uuid.NewString(), db: db, cache: cache}
}

func (s *DefaultUserService) User(id int) string {
	key := fmt.Sprintf("user:%d", id)
	if s.cache != nil {
		if v, ok := s.cache.Get(key); ok {
			return v
		}
	}
	v := s.db.Query(key)
	if s.cache != nil {
		s.cache.Set(key, v)
	}
	return v
}

func (s *DefaultUserService) DB() Database {
	return s.db
}

func (s *DefaultUserService) Cache() Cache {
	return s.cache
}

func (s *DefaultUserService) InstanceID() string {
	return s.id
}

// AuditTrail depends on a Logger, like Database does. Registering both
// under a root that needs the two of them forms a diamond: the same Logger
// interface is resolved at two sibling positions of one chain.
type AuditTrail interface {
	Record(event string)
	Logger() Logger
	InstanceID() string
}

// MemoryAuditTrail implements AuditTrail.
type MemoryAuditTrail struct {
	id     string
	logger Logger
}

func NewMemoryAuditTrail(logger Logger) *MemoryAuditTrail {
	return &MemoryAuditTrail{id: uuid.NewString(), logger: logger}
}

func (a *MemoryAuditTrail) Record(event string) {
	if a.logger != nil {
		a.logger.Log("audit: " + event)
	}
}

func (a *MemoryAuditTrail) Logger() Logger {
	return a.logger
}

func (a *MemoryAuditTrail) InstanceID() string {
	return a.id
}

// ReportService depends on a Database and an AuditTrail, in that order.
type ReportService interface {
	DB() Database
	Audit() AuditTrail
	InstanceID() string
}

// DefaultReportService implements ReportService.
type DefaultReportService struct {
	id    string
	db    Database
	audit AuditTrail
}

func NewReportService(db Database, audit AuditTrail) *DefaultReportService {
	return &DefaultReportService{id: uuid.NewString(), db: db, audit: audit}
}

func (s *DefaultReportService) DB() Database {
	return s.db
}

func (s *DefaultReportService) Audit() AuditTrail {
	return s.audit
}

func (s *DefaultReportService) InstanceID() string {
	return s.id
}

// Echo depends on itself, forming a direct cycle.
type Echo interface {
	Inner() Echo
	InstanceID() string
}

// EchoService implements Echo.
type EchoService struct {
	id    string
	inner Echo
}

func NewEchoService(inner Echo) *EchoService {
	return &EchoService{id: uuid.NewString(), inner: inner}
}

func (e *EchoService) Inner() Echo {
	return e.inner
}

func (e *EchoService) InstanceID() string {
	return e.id
}

// Ping and Pong depend on each other, forming an indirect cycle.
type Ping interface {
	Peer() Pong
	InstanceID() string
}

type Pong interface {
	Peer() Ping
	InstanceID() string
}

// PingService implements Ping.
type PingService struct {
	id   string
	peer Pong
}

func NewPingService(peer Pong) *PingService {
	return &PingService{id: uuid.NewString(), peer: peer}
}

func (p *PingService) Peer() Pong {
	return p.peer
}

func (p *PingService) InstanceID() string {
	return p.id
}

// PongService implements Pong.
type PongService struct {
	id   string
	peer Ping
}

func NewPongService(peer Ping) *PongService {
	return &PongService{id: uuid.NewString(), peer: peer}
}

func (p *PongService) Peer() Ping {
	return p.peer
}

func (p *PongService) InstanceID() string {
	return p.id
}
