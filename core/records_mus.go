package core

import (
	"time"

	"github.com/mus-format/mus-go"
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"
)

// MUS serializers for the storage layer. The schema is small enough
// that hand-written serializers beat a generation step; timestamps are
// encoded as Unix microseconds.

var (
	// StringPropertiesMUS serializes StringProperties.
	StringPropertiesMUS = stringPropertiesSer{}

	// StringRecordMUS serializes StringRecord.
	StringRecordMUS = stringRecordSer{}

	frequencyMapMUS = ord.NewMapSer[string, uint64](ord.String, varint.Uint64)
)

type stringPropertiesSer struct{}

var _ mus.Serializer[StringProperties] = stringPropertiesSer{}

func (stringPropertiesSer) Marshal(p StringProperties, bs []byte) (n int) {
	n = varint.Uint64.Marshal(p.Length, bs)
	n += ord.Bool.Marshal(p.IsPalindrome, bs[n:])
	n += varint.Uint64.Marshal(p.UniqueCharacters, bs[n:])
	n += varint.Uint64.Marshal(p.WordCount, bs[n:])
	n += ord.String.Marshal(p.Sha256Hash, bs[n:])
	n += frequencyMapMUS.Marshal(p.CharacterFrequencyMap, bs[n:])
	return n
}

func (stringPropertiesSer) Unmarshal(bs []byte) (p StringProperties, n int, err error) {
	var n1 int
	p.Length, n, err = varint.Uint64.Unmarshal(bs)
	if err != nil {
		return
	}
	p.IsPalindrome, n1, err = ord.Bool.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	p.UniqueCharacters, n1, err = varint.Uint64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	p.WordCount, n1, err = varint.Uint64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	p.Sha256Hash, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	p.CharacterFrequencyMap, n1, err = frequencyMapMUS.Unmarshal(bs[n:])
	n += n1
	return
}

func (stringPropertiesSer) Size(p StringProperties) (size int) {
	size = varint.Uint64.Size(p.Length)
	size += ord.Bool.Size(p.IsPalindrome)
	size += varint.Uint64.Size(p.UniqueCharacters)
	size += varint.Uint64.Size(p.WordCount)
	size += ord.String.Size(p.Sha256Hash)
	size += frequencyMapMUS.Size(p.CharacterFrequencyMap)
	return size
}

func (stringPropertiesSer) Skip(bs []byte) (n int, err error) {
	var n1 int
	n, err = varint.Uint64.Skip(bs)
	if err != nil {
		return
	}
	n1, err = ord.Bool.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Uint64.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Uint64.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = frequencyMapMUS.Skip(bs[n:])
	n += n1
	return
}

type stringRecordSer struct{}

var _ mus.Serializer[StringRecord] = stringRecordSer{}

func (stringRecordSer) Marshal(r StringRecord, bs []byte) (n int) {
	n = ord.String.Marshal(r.Id, bs)
	n += ord.String.Marshal(r.Value, bs[n:])
	n += StringPropertiesMUS.Marshal(r.Properties, bs[n:])
	n += varint.Int64.Marshal(r.CreatedAt.UnixMicro(), bs[n:])
	return n
}

func (stringRecordSer) Unmarshal(bs []byte) (r StringRecord, n int, err error) {
	var n1 int
	r.Id, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	r.Value, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	r.Properties, n1, err = StringPropertiesMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	var createdAt int64
	createdAt, n1, err = varint.Int64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	r.CreatedAt = time.UnixMicro(createdAt).UTC()
	return
}

func (stringRecordSer) Size(r StringRecord) (size int) {
	size = ord.String.Size(r.Id)
	size += ord.String.Size(r.Value)
	size += StringPropertiesMUS.Size(r.Properties)
	size += varint.Int64.Size(r.CreatedAt.UnixMicro())
	return size
}

func (stringRecordSer) Skip(bs []byte) (n int, err error) {
	var n1 int
	n, err = ord.String.Skip(bs)
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = StringPropertiesMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Int64.Skip(bs[n:])
	n += n1
	return
}
