package allowlist

import (
	tokenomics "github.com/iov-one/tokenomics"
	"github.com/iov-one/tokenomics/errors"
	"github.com/iov-one/tokenomics/gconf"
	"github.com/iov-one/tokenomics/orm"
	"github.com/iov-one/tokenomics/x"
)

// Registry manages the allow list.
type Registry struct {
	auth    x.Authenticator
	members orm.Bucket
	order   orm.Bucket
	seq     orm.Sequence
}

// NewRegistry returns a registry authorizing the admin with given
// authenticator.
func NewRegistry(auth x.Authenticator) *Registry {
	return &Registry{
		auth:    auth,
		members: newMemberBucket(),
		order:   newOrderBucket(),
		seq:     orm.NewSequence("alist", "position"),
	}
}

// Config returns the current configuration.
func (r *Registry) Config(db gconf.ReadStore) (*Configuration, error) {
	var conf Configuration
	if err := gconf.Load(db, pkgName, &conf); err != nil {
		return nil, errors.Wrap(err, "allowlist configuration")
	}
	return &conf, nil
}

// SetConfig stores the configuration without any authorization. It is
// meant for genesis and tests.
func (r *Registry) SetConfig(db gconf.Store, conf *Configuration) error {
	return gconf.Save(db, pkgName, conf)
}

// admin loads the configuration and authorizes its admin.
func (r *Registry) admin(ctx tokenomics.Context, db tokenomics.KVStore) (*Configuration, error) {
	conf, err := r.Config(db)
	if err != nil {
		return nil, err
	}
	if err := x.RequireAddress(ctx, r.auth, conf.Admin, "allowlist admin"); err != nil {
		return nil, err
	}
	return conf, nil
}

// SetAdmin hands the registry over to another admin.
func (r *Registry) SetAdmin(ctx tokenomics.Context, db tokenomics.KVStore, admin tokenomics.Address) error {
	conf, err := r.admin(ctx, db)
	if err != nil {
		return err
	}
	conf.Admin = admin
	if err := r.SetConfig(db, conf); err != nil {
		return err
	}
	tokenomics.Emit(ctx, &AdminChangedEvent{Admin: admin})
	return nil
}

// SetMaxSize changes the maximum number of members. Lowering it below the
// current number of members only prevents further additions.
func (r *Registry) SetMaxSize(ctx tokenomics.Context, db tokenomics.KVStore, size uint32) error {
	conf, err := r.admin(ctx, db)
	if err != nil {
		return err
	}
	conf.MaxSize = size
	if err := r.SetConfig(db, conf); err != nil {
		return err
	}
	tokenomics.Emit(ctx, &SizeChangedEvent{MaxSize: size})
	return nil
}

// Add appends the address to the set.
func (r *Registry) Add(ctx tokenomics.Context, db tokenomics.KVStore, addr tokenomics.Address) error {
	conf, err := r.admin(ctx, db)
	if err != nil {
		return err
	}
	if err := r.add(db, conf, addr); err != nil {
		return err
	}
	tokenomics.Emit(ctx, &AddedEvent{Address: addr})
	return nil
}

func (r *Registry) add(db tokenomics.KVStore, conf *Configuration, addr tokenomics.Address) error {
	if err := addr.Validate(); err != nil {
		return errors.Wrap(err, "address")
	}
	n, err := r.members.Count(db)
	if err != nil {
		return err
	}
	if uint64(n) >= uint64(conf.MaxSize) {
		return errors.Wrapf(errors.ErrCapacityExceeded, "size reached the limit of %d", conf.MaxSize)
	}
	if ok, err := r.members.Has(db, addr); err != nil {
		return err
	} else if ok {
		return errors.Wrapf(errors.ErrDuplicate, "%s", addr)
	}
	pos, err := r.seq.NextInt(db)
	if err != nil {
		return errors.Wrap(err, "position")
	}
	m := &Member{Address: addr, Position: pos}
	if err := r.members.Put(db, addr, m); err != nil {
		return err
	}
	return r.order.Put(db, orm.EncodeSequence(pos), m)
}

// Remove deletes the address from the set. ErrNotFound is returned for an
// address that is not a member.
func (r *Registry) Remove(ctx tokenomics.Context, db tokenomics.KVStore, addr tokenomics.Address) error {
	if _, err := r.admin(ctx, db); err != nil {
		return err
	}
	var m Member
	if err := r.members.One(db, addr, &m); err != nil {
		return err
	}
	if err := r.members.Delete(db, addr); err != nil {
		return err
	}
	if err := r.order.Delete(db, orm.EncodeSequence(m.Position)); err != nil {
		return err
	}
	tokenomics.Emit(ctx, &RemovedEvent{Address: addr})
	return nil
}

// IsMember reports whether the address is in the set.
func (r *Registry) IsMember(db tokenomics.ReadOnlyKVStore, addr tokenomics.Address) (bool, error) {
	if len(addr) == 0 {
		return false, nil
	}
	return r.members.Has(db, addr)
}

// List returns all members in the order they were added.
func (r *Registry) List(db tokenomics.ReadOnlyKVStore) ([]tokenomics.Address, error) {
	var list []tokenomics.Address
	err := r.order.Visit(db, func(_, raw []byte) error {
		var m Member
		if err := orm.Unmarshal(raw, &m); err != nil {
			return err
		}
		list = append(list, m.Address)
		return nil
	})
	return list, err
}
