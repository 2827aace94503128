package message

import (
	"fmt"
)

const partitionNumber = 3

type RedisPartition int

func (r RedisPartition) ListKey() string {
	return fmt.Sprintf("Archive-Partition-%d", r)
}

func (r RedisPartition) OwnerKey() string {
	return fmt.Sprintf("Archive-Partition %d Owner", r)
}

func (r RedisPartition) LockName() string {
	return fmt.Sprintf("Archive-Partition %d Lock", r)
}

var RedisPartitions []RedisPartition

func init() {
	for i := range partitionNumber {
		RedisPartitions = append(RedisPartitions, RedisPartition(i+1))
	}
}
