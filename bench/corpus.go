// Package bench compares hand-written loops with the equivalent seqs pipelines.
package bench

import (
	"sync"

	"github.com/samber/lo"

	"rangekit/containers"
	"rangekit/engine"
)

// Level is a package that owns the objects placed in a map.
type Level struct {
	engine.Package
	Actors int
}

var LevelClass = engine.RegisterClass("Level", engine.PackageClass, func() *Level { return &Level{} })

// SampleClasses are the classes a corpus is built from.
var SampleClasses = []*engine.Class{
	engine.ObjectClass,
	engine.PackageClass,
	engine.MetaDataClass,
	LevelClass,
}

var sampleBlock = sync.OnceValue(func() []engine.Object {
	cdos := lo.Map(SampleClasses, func(c *engine.Class, _ int) engine.Object {
		return c.DefaultObject()
	})
	instances := lo.Map(SampleClasses, func(c *engine.Class, _ int) engine.Object {
		obj, _ := engine.NewObjectOfClass(c, "Bench_"+c.Name())
		return obj
	})
	packages := lo.Map(SampleClasses, func(c *engine.Class, _ int) engine.Object {
		obj, _ := engine.NewObjectOfClass(engine.PackageClass, "/Bench/"+c.Name())
		return obj
	})

	block := make([]engine.Object, 0, 3*(len(SampleClasses)+1))
	block = append(append(block, cdos...), nil)
	block = append(append(block, instances...), nil)
	block = append(append(block, packages...), nil)
	return block
})

// Corpus returns the sample block repeated copies times: the default object
// of every sample class, one instance of each and one package per class,
// with a nil hole after each group.
func Corpus(copies int) *containers.Array[engine.Object] {
	if copies < 0 {
		copies = 0
	}
	block := sampleBlock()
	return containers.ArrayOf(lo.Flatten(lo.Times(copies, func(int) []engine.Object {
		return block
	}))...)
}
