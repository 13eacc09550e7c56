/*
Bump the project version and commit the change.

  doozer version bump

Description

Increment the last component of the project version by one and commit
the modified version file. The commit message lists the commits created
since the previous release.

Steps

This command goes through the following steps:

  1. Make sure the working tree is clean.
  2. Read the version file and print the current version to stdout.
  3. Increment the last version component by one.
  4. Overwrite the version file with the new version string.
  5. Stage the version file.
  6. Commit, the message being

       Prepare for release v<new version>

       <short hash> <subject>
       ...

     where the listed commits are the ones reachable from the current
     branch tip but not from tag v<old version>, the newest one first,
     merge commits excluded.

The first failing step aborts the command. The steps already executed
are not rolled back.
*/
package bumpCmd
