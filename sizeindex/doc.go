package sizeindex

/*

# Size and position index for virtualized lists

A virtualized list or table only materializes the rows that intersect the
viewport. To do that it needs to answer, for a sequence of N items laid end
to end along one axis:

* how long is the whole sequence (to size the scrollbar)
* where does item i start, and how big is it
* which items intersect the viewport at scroll offset o
* what scroll offset brings item i into view

This package answers those questions. It does no layout and no rendering;
the renderer owns the items and reports measured sizes back through the
size source.

## Size sources

Item sizes come from one of three sources:

* ConstantSize    every item has the same size
* SequenceSizes   item i has sizes[i]
* MeasuredSizes   a function measures item i on demand

For the first two, the full prefix-sum table is built in one pass when the
index is configured and every lookup is a slice access.

For a measured source the index runs in "just-in-time" mode. Item offsets
are a prefix sum, so item k cannot be placed until items 0..k-1 are
measured. The index keeps a high-water mark, the last measured index, and
treats everything at or below it as trusted:

	index     0    1    2    3    4    5    6 ...
	size     10   20   30    ?    ?    ?    ?
	offset    0   10   30    ?    ?    ?    ?
	                     ^ mark = 2

Asking for item 5 measures 3, 4 and 5, in that order, and moves the mark to
5. Nothing is ever measured out of order and nothing below the mark is
measured twice. ResetItem(k) lowers the mark to k-1 when the renderer finds
item k changed size; the stale slots are overwritten the next time they are
reached.

## Total size

In just-in-time mode the total is a projection,

	offset(mark) + size(mark) + estimatedItemSize * (itemCount - mark - 1)

which becomes exact once the mark reaches the last item.

## Search

Finding the item at an offset is a search over a monotonic sequence that is
only partially known. If the offset falls inside the measured prefix we
binary search it. Otherwise we probe forward from the mark with a doubling
stride,

	mark, mark+1, mark+3, mark+7, mark+15 ...

measuring as we go, until a probe lands beyond the offset (or runs off
the end), then binary search the bracket. The probe overshoots the target
by at most the distance already covered, so the items measured stay
proportional to the distance from the mark, and only O(log distance)
lookups are search steps. A plain binary search over the unmeasured tail
would measure everything up to its first midpoint.

Searches return the greatest index whose offset is at or below the target,
so an item cut by a viewport edge is still reported as visible, and a run
of items sharing one offset resolves to the last of them.

*/
